// Package main implements a NES cartridge header analyzer
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/nesinfo/internal/cli"
	"github.com/retroenv/nesinfo/internal/config"
	"github.com/retroenv/nesinfo/internal/options"
	"github.com/retroenv/nesinfo/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	files, err := filesToProcess(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if len(files) == 0 {
		logger.Fatal("No files matched the batch pattern", log.String("pattern", opts.Batch))
	}

	writer, err := createWriter(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	p := pipeline.New(logger)
	failed := 0

	for i, file := range files {
		opts.Input = file
		if i > 0 && !opts.JSON {
			_, _ = fmt.Fprintln(writer)
		}

		if _, err := p.Execute(ctx, opts, writer); err != nil {
			// handle context cancellation (Ctrl+C) gracefully
			if errors.Is(err, context.Canceled) {
				logger.Info("Operation cancelled")
				return
			}
			logger.Error("Analysis failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// filesToProcess returns the list of files to process based on the options.
func filesToProcess(opts options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	return matches, nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// printBanner prints application version information.
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("nesinfo - NES cartridge header analyzer",
		log.String("version", buildinfo.Version(version, commit, date)))
}

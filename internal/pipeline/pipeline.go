// Package pipeline orchestrates the analysis workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/nesinfo/internal/analysis"
	"github.com/retroenv/nesinfo/internal/loader"
	"github.com/retroenv/nesinfo/internal/options"
	"github.com/retroenv/nesinfo/internal/render"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete analysis workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new analysis pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the input file and writes its analysis report to writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (analysis.Report, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Report{}, err
	}

	img, err := p.loader.Load(opts.Input)
	if err != nil {
		return analysis.Report{}, fmt.Errorf("loading image: %w", err)
	}

	return p.ExecuteWithImage(ctx, img, opts, writer)
}

// ExecuteWithImage analyzes a pre-loaded image and writes its report to writer.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteWithImage(_ context.Context, img analysis.Image, opts options.Program,
	writer io.Writer) (analysis.Report, error) {

	report := analysis.Analyze(img)
	p.printInfo(opts, report)

	renderer := render.New(writer)

	var err error
	if opts.JSON {
		err = renderer.WriteJSON(report)
	} else {
		err = renderer.Write(report)
	}
	if err != nil {
		return report, fmt.Errorf("rendering report: %w", err)
	}

	return report, nil
}

// printInfo logs the information about the analyzed image.
func (p *Pipeline) printInfo(opts options.Program, report analysis.Report) {
	if opts.Quiet {
		return
	}

	p.logger.Debug("Analyzed image",
		log.String("file", report.Name),
		log.Int("size", report.Size),
		log.Stringer("status", report.Status),
	)

	if report.Valid() && !report.Mapper.Known() {
		p.logger.Warn("Mapper is not in the reference table",
			log.Uint8("mapper", report.Header.MapperID))
	}
}

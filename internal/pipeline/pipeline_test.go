package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/nesinfo/internal/analysis"
	"github.com/retroenv/nesinfo/internal/ines"
	"github.com/retroenv/nesinfo/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func buildImageData() []byte {
	data := make([]byte, ines.HeaderSize)
	copy(data, []byte{'N', 'E', 'S', 0x1a})
	data[4] = 2
	data[5] = 1
	return data
}

func TestExecuteWithImage(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	img := analysis.Image{Name: "memory.nes", Data: buildImageData()}
	var buf bytes.Buffer

	report, err := p.ExecuteWithImage(context.Background(), img, options.Program{}, &buf)
	assert.NoError(t, err)
	assert.True(t, report.Valid())
	assert.Equal(t, "NROM", report.Mapper.Name)
	assert.Contains(t, buf.String(), "PRG         | 32kb (2 x 16kb pages)")
}

func TestExecuteWithImageJSON(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	img := analysis.Image{Name: "memory.nes", Data: buildImageData()}
	var buf bytes.Buffer

	opts := options.Program{JSON: true}
	report, err := p.ExecuteWithImage(context.Background(), img, opts, &buf)
	assert.NoError(t, err)
	assert.True(t, report.Valid())
	assert.Contains(t, buf.String(), `"status": "valid"`)
}

func TestExecute(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	tmpFile := filepath.Join(t.TempDir(), "game.nes")
	assert.NoError(t, os.WriteFile(tmpFile, buildImageData(), 0600))

	var buf bytes.Buffer
	report, err := p.Execute(context.Background(), options.Program{Input: tmpFile}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "game.nes", report.Name)
	assert.Contains(t, buf.String(), "Status      | Appears to be a valid .nes rom")
}

func TestExecuteMissingFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	var buf bytes.Buffer
	opts := options.Program{Input: "/nonexistent/file.nes"}
	_, err := p.Execute(context.Background(), opts, &buf)
	assert.Error(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestExecuteCancelledContext(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := p.Execute(ctx, options.Program{Input: "unused.nes"}, &buf)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

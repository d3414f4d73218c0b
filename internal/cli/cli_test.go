package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/nesinfo/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.nes"},
			want: options.Program{Input: "test.nes"},
		},
		{
			name: "json flag",
			args: []string{"prog", "-json", "test.nes"},
			want: options.Program{Input: "test.nes", JSON: true},
		},
		{
			name: "output flag",
			args: []string{"prog", "-o", "report.txt", "test.nes"},
			want: options.Program{Input: "test.nes", Output: "report.txt"},
		},
		{
			name: "quiet and debug flags",
			args: []string{"prog", "-q", "-debug", "test.nes"},
			want: options.Program{Input: "test.nes", Quiet: true, Debug: true},
		},
		{
			name: "batch flag needs no file argument",
			args: []string{"prog", "-batch", "*.nes"},
			want: options.Program{Batch: "*.nes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsUsageError(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog"}

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsArgumentOrder(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "test.nes", "-json"}

	_, err := ParseFlags()
	assert.Error(t, err)
	assert.ErrorContains(t, err, "last argument")
}

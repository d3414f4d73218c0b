// Package options contains the program options.
package options

// Program options of the analyzer.
type Program struct {
	Input  string
	Output string
	Batch  string

	JSON  bool
	Debug bool
	Quiet bool
}

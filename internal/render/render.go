// Package render writes analysis reports to an output stream.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/nesinfo/internal/analysis"
)

// Renderer writes analysis reports to a writer, either as aligned
// text rows or as JSON.
type Renderer struct {
	writer io.Writer
}

// New creates a new renderer writing to the given writer.
func New(writer io.Writer) *Renderer {
	return &Renderer{
		writer: writer,
	}
}

type row struct {
	tag   string
	value string
}

// Write writes the report as aligned text rows.
func (r *Renderer) Write(report analysis.Report) error {
	for _, row := range buildRows(report) {
		if _, err := fmt.Fprintf(r.writer, "%-12s| %s\n", row.tag, row.value); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	return nil
}

func buildRows(report analysis.Report) []row {
	rows := []row{
		{"ROM", fmt.Sprintf("%s (%d bytes, %d kilobytes)", report.Name, report.Size, report.Size/1024)},
		{"Status", statusLine(report.Status)},
	}

	if report.Status == analysis.StatusTooShort {
		return rows
	}

	rows = append(rows, row{"Header", hexBytes(report.HeaderBytes)})

	// stop interpreting files that are not ROMs
	if !report.Valid() {
		return rows
	}

	header := report.Header
	rows = append(rows,
		row{"PRG", report.PRGSize},
		row{"CHR", report.CHRSize},
		row{"Mapper", fmt.Sprintf("%d (%s)", header.MapperID, report.Mapper.Name)},
		row{"Examples", exampleList(report.Mapper.Examples)},
		row{"Mirroring", header.Mirroring.String()},
		row{"Trainer", yesNo(header.HasTrainer)},
		row{"FourScreen?", yesNo(header.FourScreen)},
		row{"Battery?", yesNo(header.BatteryBacked)},
	)

	if header.NES2 {
		rows = append(rows, row{"Format", "NES 2.0 header flagged"})
	}
	if header.Dirty {
		rows = append(rows, row{"Note", "bytes 7-15 appear dirty"})
	}
	return rows
}

func statusLine(status analysis.Status) string {
	switch status {
	case analysis.StatusValid:
		return "Appears to be a valid .nes rom"
	case analysis.StatusTooShort:
		return "Invalid: file is shorter than the 16 byte header"
	default:
		return "Does not appear to be a valid .nes rom"
	}
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func exampleList(examples []string) string {
	if len(examples) == 0 {
		return "none known"
	}
	return strings.Join(examples, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// jsonReport is the JSON view of a report. Fields that are meaningless
// for the given status are omitted.
type jsonReport struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Status string `json:"status"`

	Header string `json:"header,omitempty"`

	PRGPages *uint8   `json:"prg_pages,omitempty"`
	CHRPages *uint8   `json:"chr_pages,omitempty"`
	PRGSize  string   `json:"prg_size,omitempty"`
	CHRSize  string   `json:"chr_size,omitempty"`
	Mapper   *jsonMap `json:"mapper,omitempty"`

	Mirroring  string `json:"mirroring,omitempty"`
	Battery    *bool  `json:"battery,omitempty"`
	Trainer    *bool  `json:"trainer,omitempty"`
	FourScreen *bool  `json:"four_screen,omitempty"`
	NES2       *bool  `json:"nes2,omitempty"`
	Dirty      *bool  `json:"dirty,omitempty"`
}

type jsonMap struct {
	ID       uint8    `json:"id"`
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

// WriteJSON writes the report as indented JSON.
func (r *Renderer) WriteJSON(report analysis.Report) error {
	out := jsonReport{
		Name:   report.Name,
		Size:   report.Size,
		Status: report.Status.String(),
		Header: hexBytes(report.HeaderBytes),
	}

	if report.Valid() {
		header := report.Header
		out.PRGPages = &header.PRGPageCount
		out.CHRPages = &header.CHRPageCount
		out.PRGSize = report.PRGSize
		out.CHRSize = report.CHRSize
		out.Mapper = &jsonMap{
			ID:       report.Mapper.ID,
			Name:     report.Mapper.Name,
			Examples: report.Mapper.Examples,
		}
		out.Mirroring = header.Mirroring.String()
		out.Battery = &header.BatteryBacked
		out.Trainer = &header.HasTrainer
		out.FourScreen = &header.FourScreen
		out.NES2 = &header.NES2
		out.Dirty = &header.Dirty
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

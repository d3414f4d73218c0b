// Package analysis builds structured reports from cartridge images.
package analysis

import (
	"fmt"

	"github.com/retroenv/nesinfo/internal/ines"
	"github.com/retroenv/nesinfo/internal/mapperdb"
)

// Image is a cartridge file loaded into memory. It is not mutated after
// construction, analyses of independent images can run concurrently.
type Image struct {
	Name string // display name, usually the base name of the file path
	Data []byte
}

// Size returns the size of the image in bytes.
func (i Image) Size() int {
	return len(i.Data)
}

// Status classifies the validity of an analyzed image.
type Status uint8

const (
	StatusValid Status = iota
	StatusInvalidMagic
	StatusTooShort
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalidMagic:
		return "invalid magic"
	case StatusTooShort:
		return "too short"
	default:
		return "unknown"
	}
}

// Report is the complete analysis result for one image. All fields are
// plain values, any textual rendering happens in the render package.
type Report struct {
	Name string
	Size int

	Status Status

	// HeaderBytes holds a copy of the raw header for diagnostic display.
	// Nil when the image is shorter than the header.
	HeaderBytes []byte

	// The remaining fields are only set for StatusValid.
	Header  ines.Header
	Mapper  mapperdb.Info
	PRGSize string
	CHRSize string
}

// Valid reports whether the image passed all header checks.
func (r Report) Valid() bool {
	return r.Status == StatusValid
}

// Analyze decodes the header of the image and resolves its mapper.
// It is a pure function of its input and never fails: malformed input
// of any length or content is reported through the Status field.
func Analyze(img Image) Report {
	report := Report{
		Name: img.Name,
		Size: img.Size(),
	}

	header, err := ines.Decode(img.Data)
	if err != nil {
		report.Status = StatusTooShort
		return report
	}

	report.HeaderBytes = append([]byte(nil), img.Data[:ines.HeaderSize]...)

	if !header.MagicValid {
		// do not interpret the remaining fields of a non-ROM file,
		// the raw header bytes stay available for display
		report.Status = StatusInvalidMagic
		return report
	}

	report.Status = StatusValid
	report.Header = header
	report.Mapper = mapperdb.Lookup(header.MapperID)
	report.PRGSize = pageSize(header.PRGPageCount, 16)
	report.CHRSize = pageSize(header.CHRPageCount, 8)
	return report
}

func pageSize(pages uint8, unitKB int) string {
	return fmt.Sprintf("%dkb (%d x %dkb pages)", int(pages)*unitKB, pages, unitKB)
}

// Package ines implements decoding of the iNES cartridge header format.
// https://www.nesdev.org/wiki/INES
package ines

import (
	"bytes"
	"errors"
	"fmt"
)

// HeaderSize is the fixed size of the iNES header in bytes.
const HeaderSize = 16

// magic is the 4 byte signature at the start of every iNES file,
// ASCII "NES" followed by the MS-DOS end-of-file marker.
var magic = []byte{'N', 'E', 'S', 0x1a}

// ErrHeaderTooShort is returned when the input holds fewer than HeaderSize bytes.
var ErrHeaderTooShort = errors.New("header too short")

// Mirroring describes the nametable mirroring mode of the cartridge.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

func (m Mirroring) String() string {
	if m == MirrorVertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Header is the decoded form of the 16 iNES header bytes.
type Header struct {
	MagicValid bool

	PRGPageCount uint8 // number of 16kb PRG-ROM pages
	CHRPageCount uint8 // number of 8kb CHR-ROM pages

	MapperID uint8

	Mirroring     Mirroring
	BatteryBacked bool
	HasTrainer    bool
	FourScreen    bool

	// NES2 is set when byte 7 flags the NES 2.0 header extension.
	// The layout of the first 16 bytes is unchanged, so decoding proceeds
	// normally and the flag is informational only.
	NES2 bool

	// Dirty is set when any of the reserved bytes 7-15 is nonzero,
	// usually caused by rippers writing their name into the padding.
	Dirty bool
}

// Decode decodes the first HeaderSize bytes of data into a Header.
// It fails with ErrHeaderTooShort for shorter input. A magic number
// mismatch is not a decode error, all fields are still computed and
// the caller has to check MagicValid before trusting them.
func Decode(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", ErrHeaderTooShort, len(data), HeaderSize)
	}

	header := Header{
		MagicValid:    bytes.Equal(data[:4], magic),
		PRGPageCount:  data[4],
		CHRPageCount:  data[5],
		MapperID:      data[6]>>4 | data[7]&0xf0,
		Mirroring:     Mirroring(data[6] & 0x01),
		BatteryBacked: data[6]&0x02 != 0,
		HasTrainer:    data[6]&0x04 != 0,
		FourScreen:    data[6]&0x08 != 0,
		NES2:          data[7]&0x0c == 0x08,
	}

	for _, b := range data[7:HeaderSize] {
		if b != 0 {
			header.Dirty = true
			break
		}
	}

	return header, nil
}

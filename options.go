// This file is part of MemEdit.
//
// MemEdit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MemEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MemEdit.  If not, see <https://www.gnu.org/licenses/>.

package memedit

import (
	"github.com/inkyblackness/imgui-go/v4"
)

// the widest the grid can go. the options area slider enforces the same
// limit as the clamp applied when the grid is drawn.
const maxColumns = 64

// TextStyle selects a font from the table given to Editor.SetFontTable().
// Values outside the table, including the zero value when no table has been
// set, mean "whatever font is current".
type TextStyle int

// Options controls the appearance of the editor. The zero value is usable
// but DefaultOptions() is a better starting point.
//
// Fields can be changed directly at any time between frames. Values that
// have a valid range, such as ColumnCount, are clamped when the grid is
// drawn rather than when they are assigned.
type Options struct {
	// whether the window created by DrawWindow() is showing. the close
	// widget on the window clears this flag
	IsOpen bool

	// the printable representation of the visible bytes, drawn to the right
	// of the grid
	ShowASCII bool

	// draw zero value bytes in ZeroColor so that sparse memory reads easily
	ShowZeroColor bool
	ZeroColor     imgui.Vec4

	// color of the address labels on the left of the grid
	AddressColor imgui.Vec4

	// color of the marker on the cell the data preview reads from
	SelectColor imgui.Vec4

	// the number of bytes shown on one row. clamped to [1, 64]
	ColumnCount int

	// fonts for the three text roles in the grid
	AddressTextStyle TextStyle
	ByteTextStyle    TextStyle
	ASCIITextStyle   TextStyle

	// settings for the data preview in the options area
	Preview PreviewOptions
}

// PreviewOptions controls how the data preview decodes the bytes at the
// selected address.
type PreviewOptions struct {
	Endianness Endianness
	Format     DataFormat
}

// DefaultOptions returns the recommended starting options.
func DefaultOptions() Options {
	return Options{
		IsOpen:        true,
		ShowASCII:     true,
		ShowZeroColor: true,
		ZeroColor:     imgui.Vec4{X: 0.38, Y: 0.38, Z: 0.38, W: 1.0},
		AddressColor:  imgui.Vec4{X: 0.49, Y: 0.62, Z: 0.98, W: 1.0},
		SelectColor:   imgui.Vec4{X: 0.98, Y: 0.62, Z: 0.29, W: 1.0},
		ColumnCount:   16,
		Preview: PreviewOptions{
			Endianness: LittleEndian,
			Format:     FormatU8,
		},
	}
}

// the column count with the valid range applied.
func (o Options) columns() int {
	if o.ColumnCount < 1 {
		return 1
	}
	if o.ColumnCount > maxColumns {
		return maxColumns
	}
	return o.ColumnCount
}

// Endianness of the data preview decoding.
type Endianness int

// List of valid Endianness values.
const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "Little Endian"
	case BigEndian:
		return "Big Endian"
	}
	return "unknown"
}

// DataFormat is the type the data preview decodes the bytes at the selected
// address into.
type DataFormat int

// List of valid DataFormat values.
const (
	FormatU8 DataFormat = iota
	FormatU16
	FormatU32
	FormatU64
	FormatI8
	FormatI16
	FormatI32
	FormatI64
	FormatF32
	FormatF64
)

func (f DataFormat) String() string {
	switch f {
	case FormatU8:
		return "u8"
	case FormatU16:
		return "u16"
	case FormatU32:
		return "u32"
	case FormatU64:
		return "u64"
	case FormatI8:
		return "i8"
	case FormatI16:
		return "i16"
	case FormatI32:
		return "i32"
	case FormatI64:
		return "i64"
	case FormatF32:
		return "f32"
	case FormatF64:
		return "f64"
	}
	return "unknown"
}

// the number of bytes the format decodes.
func (f DataFormat) byteSize() int {
	switch f {
	case FormatU8, FormatI8:
		return 1
	case FormatU16, FormatI16:
		return 2
	case FormatU32, FormatI32, FormatF32:
		return 4
	case FormatU64, FormatI64, FormatF64:
		return 8
	}
	return 0
}

// the lists the data preview combos are built from.
var endianOptions = []Endianness{LittleEndian, BigEndian}

var formatOptions = []DataFormat{
	FormatU8, FormatU16, FormatU32, FormatU64,
	FormatI8, FormatI16, FormatI32, FormatI64,
	FormatF32, FormatF64,
}

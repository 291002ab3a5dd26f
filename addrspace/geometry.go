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

package addrspace

import (
	"fmt"
)

// ChunkColumns is the maximum number of byte columns that are grouped
// together. Wider layouts are emitted as several chunks per row, with a
// visible gap between chunks.
const ChunkColumns = 8

// Geometry describes how a range lays out at a given column count: how many
// display rows there are, how wide the address labels must be, and how the
// byte columns group into chunks.
//
// A Geometry is derived fresh every frame from the selected range and the
// current options. It holds no reference to anything mutable.
type Geometry struct {
	Range   Range
	Columns int

	// the number of display rows needed to show every byte in the range at
	// the given column count. the final row may be partial
	Rows int

	// the number of hex digits needed for address labels. derived from the
	// range END so that the label width is identical for every row of the
	// range, not just the rows that happen to be visible
	AddressDigits int

	// byte columns are emitted in chunks of at most ChunkColumns. the
	// last chunk of a row may be narrower
	Chunks int
}

// NewGeometry derives the layout for a range at the given column count. A
// column count of less than one is treated as one.
func NewGeometry(rng Range, columns int) Geometry {
	if columns < 1 {
		columns = 1
	}

	g := Geometry{
		Range:   rng,
		Columns: columns,
	}

	g.AddressDigits = len(fmt.Sprintf("%X", rng.End))

	rows := rng.Len() / uint64(columns)
	if rng.Len()%uint64(columns) != 0 {
		rows++
	}
	g.Rows = int(rows)

	g.Chunks = (columns + ChunkColumns - 1) / ChunkColumns

	return g
}

// RowAddress returns the address of the first byte of the given display
// row.
func (g Geometry) RowAddress(row int) uint64 {
	return g.Range.Start + uint64(row)*uint64(g.Columns)
}

// ChunkCols returns the number of byte columns in the given chunk of a row.
// Out of range chunk indexes return zero.
func (g Geometry) ChunkCols(chunk int) int {
	if chunk < 0 || chunk >= g.Chunks {
		return 0
	}
	c := g.Columns - chunk*ChunkColumns
	if c > ChunkColumns {
		c = ChunkColumns
	}
	return c
}

// FormatAddress formats an address as fixed width uppercase hex, zero
// padded to AddressDigits. Every label in one range formats to the same
// width, keeping the address column from jittering as rows scroll in and
// out.
func (g Geometry) FormatAddress(addr uint64) string {
	return fmt.Sprintf("0x%0*X", g.AddressDigits, addr)
}

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

package addrspace_test

import (
	"testing"

	"github.com/jetsetilly/memedit/addrspace"
	"github.com/jetsetilly/memedit/test"
)

func TestSixteenBytesAtEightColumns(t *testing.T) {
	rng := addrspace.Range{Name: "RAM", Start: 0, End: 16}
	geo := addrspace.NewGeometry(rng, 8)

	test.Equate(t, geo.Rows, 2)
	test.Equate(t, geo.RowAddress(0), uint64(0x0))
	test.Equate(t, geo.RowAddress(1), uint64(0x8))

	// label width is pinned to the formatted range END, which is 16 (0x10),
	// giving two digits
	test.Equate(t, geo.AddressDigits, 2)
	test.Equate(t, geo.FormatAddress(0), "0x00")
	test.Equate(t, geo.FormatAddress(0xf), "0x0F")

	// eight columns fit a single chunk
	test.Equate(t, geo.Chunks, 1)
	test.Equate(t, geo.ChunkCols(0), 8)
}

func TestRowCount(t *testing.T) {
	// row count is the ceiling of length over column count, for every legal
	// column count
	const length = 1000

	rng := addrspace.Range{Name: "r", Start: 0, End: length}

	for columns := 1; columns <= 64; columns++ {
		geo := addrspace.NewGeometry(rng, columns)

		expected := length / columns
		if length%columns != 0 {
			expected++
		}
		test.Equate(t, geo.Rows, expected)

		// cells in the final row. the remainder of the division, unless the
		// rows divide exactly
		valid := length - (geo.Rows-1)*columns
		count := 0
		for a := geo.RowAddress(geo.Rows - 1); rng.Contains(a); a++ {
			count++
		}
		test.Equate(t, count, valid)
	}
}

func TestPartialLastRow(t *testing.T) {
	// 21 bytes at 8 columns: two full rows and a final row of five
	rng := addrspace.Range{Name: "r", Start: 0x100, End: 0x115}
	geo := addrspace.NewGeometry(rng, 8)

	test.Equate(t, geo.Rows, 3)

	count := 0
	for a := geo.RowAddress(2); rng.Contains(a); a++ {
		count++
	}
	test.Equate(t, count, 5)
}

func TestAddressDigits(t *testing.T) {
	// digit count follows the formatted range end, not the largest address
	// that is actually reachable
	geo := addrspace.NewGeometry(addrspace.Range{Start: 0, End: 0x100}, 16)
	test.Equate(t, geo.AddressDigits, 3)

	geo = addrspace.NewGeometry(addrspace.Range{Start: 0, End: 0xff}, 16)
	test.Equate(t, geo.AddressDigits, 2)

	geo = addrspace.NewGeometry(addrspace.Range{Start: 0xfff0, End: 0x10000}, 16)
	test.Equate(t, geo.AddressDigits, 5)
	test.Equate(t, geo.FormatAddress(0xfff0), "0x0FFF0")

	// every label in the range formats to the same width
	rng := addrspace.Range{Start: 0x0, End: 0x10000}
	geo = addrspace.NewGeometry(rng, 16)
	w := len(geo.FormatAddress(rng.Start))
	for a := rng.Start; a < rng.End; a += 0x1000 {
		test.Equate(t, len(geo.FormatAddress(a)), w)
	}
}

func TestChunking(t *testing.T) {
	rng := addrspace.Range{Start: 0, End: 0x1000}

	// a single column is a single narrow chunk
	geo := addrspace.NewGeometry(rng, 1)
	test.Equate(t, geo.Chunks, 1)
	test.Equate(t, geo.ChunkCols(0), 1)

	// nine columns spill into a second chunk
	geo = addrspace.NewGeometry(rng, 9)
	test.Equate(t, geo.Chunks, 2)
	test.Equate(t, geo.ChunkCols(0), 8)
	test.Equate(t, geo.ChunkCols(1), 1)

	// sixteen columns divide into two full chunks
	geo = addrspace.NewGeometry(rng, 16)
	test.Equate(t, geo.Chunks, 2)
	test.Equate(t, geo.ChunkCols(0), 8)
	test.Equate(t, geo.ChunkCols(1), 8)

	// the widest legal layout
	geo = addrspace.NewGeometry(rng, 64)
	test.Equate(t, geo.Chunks, 8)
	for c := 0; c < geo.Chunks; c++ {
		test.Equate(t, geo.ChunkCols(c), 8)
	}

	// chunk indexes outside the row are empty rather than an error
	test.Equate(t, geo.ChunkCols(8), 0)
	test.Equate(t, geo.ChunkCols(-1), 0)
}

func TestEmptyRange(t *testing.T) {
	geo := addrspace.NewGeometry(addrspace.Range{Start: 16, End: 16}, 8)
	test.Equate(t, geo.Rows, 0)
}

func TestColumnClamp(t *testing.T) {
	// a column count below one cannot happen through the options UI but the
	// geometry tolerates it
	geo := addrspace.NewGeometry(addrspace.Range{Start: 0, End: 16}, 0)
	test.Equate(t, geo.Columns, 1)
	test.Equate(t, geo.Rows, 16)
}

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
	"testing"

	"github.com/jetsetilly/memedit/addrspace"
	"github.com/jetsetilly/memedit/test"
)

func TestPreviewIntegers(t *testing.T) {
	mem := []byte{0x34, 0x12, 0xef, 0xbe, 0xad, 0xde, 0xff, 0x7f}
	read := func(addr uint64) uint8 { return mem[addr] }
	rng := addrspace.Range{Name: "test", Start: 0, End: uint64(len(mem))}

	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatU16}
	s, ok := previewValue(read, rng, 0, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "4660")

	opts.Endianness = BigEndian
	s, ok = previewValue(read, rng, 0, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "13330")

	opts = PreviewOptions{Endianness: LittleEndian, Format: FormatU8}
	s, ok = previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "239")

	// the same byte reinterpreted as a signed value
	opts.Format = FormatI8
	s, ok = previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "-17")

	opts = PreviewOptions{Endianness: LittleEndian, Format: FormatU32}
	s, ok = previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "3735928559")

	opts.Format = FormatI32
	s, ok = previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "-559038737")
}

func TestPreviewWideIntegers(t *testing.T) {
	mem := []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	read := func(addr uint64) uint8 { return mem[addr] }
	rng := addrspace.Range{Name: "test", Start: 0, End: uint64(len(mem))}

	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatU64}
	s, ok := previewValue(read, rng, 0, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "1")

	// the low byte becomes the high byte
	opts.Endianness = BigEndian
	s, ok = previewValue(read, rng, 0, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "72057594037927936")
}

func TestPreviewFloats(t *testing.T) {
	// 1.5 as float32 and as float64, both little endian
	mem := []byte{0x00, 0x00, 0xc0, 0x3f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x3f}
	read := func(addr uint64) uint8 { return mem[addr] }
	rng := addrspace.Range{Name: "test", Start: 0, End: uint64(len(mem))}

	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatF32}
	s, ok := previewValue(read, rng, 0, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "1.5")

	opts.Format = FormatF64
	s, ok = previewValue(read, rng, 4, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "1.5")
}

func TestPreviewBounds(t *testing.T) {
	mem := []byte{0x01, 0x02, 0x03, 0x04}
	read := func(addr uint64) uint8 { return mem[addr] }
	rng := addrspace.Range{Name: "test", Start: 0, End: uint64(len(mem))}

	// not enough bytes at the end of the range
	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatU32}
	_, ok := previewValue(read, rng, 2, opts)
	test.ExpectedFailure(t, ok)

	// address outside the range entirely
	_, ok = previewValue(read, rng, 100, opts)
	test.ExpectedFailure(t, ok)

	// a single byte at the end of the range is fine
	opts.Format = FormatU8
	s, ok := previewValue(read, rng, 3, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "4")
}

// preview reads go through the same accessor as the grid. the number and the
// addresses of the reads must be the same on every call, with no caching
// between calls and no reads beyond the bytes the format needs.
func TestPreviewReadCounts(t *testing.T) {
	mem := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	counts := make(map[uint64]int)
	read := func(addr uint64) uint8 {
		counts[addr]++
		return mem[addr]
	}
	rng := addrspace.Range{Name: "test", Start: 0, End: uint64(len(mem))}

	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatU32}
	_, ok := previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)

	// one read for each byte of the value and nothing else
	test.Equate(t, len(counts), 4)
	for a := uint64(2); a < 6; a++ {
		test.Equate(t, counts[a], 1)
	}

	// a second identical call reads the same addresses afresh
	_, ok = previewValue(read, rng, 2, opts)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, len(counts), 4)
	for a := uint64(2); a < 6; a++ {
		test.Equate(t, counts[a], 2)
	}
}

func TestPreviewAddressSpaceTop(t *testing.T) {
	// a range butting against the top of the address space must not wrap
	// around when sizing the value
	read := func(_ uint64) uint8 { return 0 }
	top := ^uint64(0)
	rng := addrspace.Range{Name: "test", Start: top - 8, End: top}

	opts := PreviewOptions{Endianness: LittleEndian, Format: FormatU64}
	_, ok := previewValue(read, rng, top-2, opts)
	test.ExpectedFailure(t, ok)

	opts.Format = FormatU8
	_, ok = previewValue(read, rng, top-1, opts)
	test.ExpectedSuccess(t, ok)
}

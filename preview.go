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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jetsetilly/memedit/addrspace"
)

// previewValue decodes the bytes starting at addr according to the preview
// options. The second return value is false when the range does not contain
// enough bytes for the format at that address.
func previewValue(read ReadFunc, rng addrspace.Range, addr uint64, opts PreviewOptions) (string, bool) {
	n := opts.Format.byteSize()
	if n == 0 || !rng.Contains(addr) {
		return "", false
	}

	// every byte of the value must be inside the range. note that addr+n-1
	// can wrap at the very top of the address space
	last := addr + uint64(n) - 1
	if last < addr || !rng.Contains(last) {
		return "", false
	}

	var b [8]byte
	for i := 0; i < n; i++ {
		b[i] = read(addr + uint64(i))
	}

	var ord binary.ByteOrder = binary.LittleEndian
	if opts.Endianness == BigEndian {
		ord = binary.BigEndian
	}

	var v uint64
	switch n {
	case 1:
		v = uint64(b[0])
	case 2:
		v = uint64(ord.Uint16(b[:2]))
	case 4:
		v = uint64(ord.Uint32(b[:4]))
	case 8:
		v = ord.Uint64(b[:8])
	}

	switch opts.Format {
	case FormatU8, FormatU16, FormatU32, FormatU64:
		return fmt.Sprintf("%d", v), true
	case FormatI8:
		return fmt.Sprintf("%d", int8(v)), true
	case FormatI16:
		return fmt.Sprintf("%d", int16(v)), true
	case FormatI32:
		return fmt.Sprintf("%d", int32(v)), true
	case FormatI64:
		return fmt.Sprintf("%d", int64(v)), true
	case FormatF32:
		return fmt.Sprintf("%g", math.Float32frombits(uint32(v))), true
	case FormatF64:
		return fmt.Sprintf("%g", math.Float64frombits(v)), true
	}

	return "", false
}

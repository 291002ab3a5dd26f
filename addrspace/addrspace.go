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

// Package addrspace models the address space shown by the memory editor: a
// set of named, half-open address ranges, one of which is selected at any
// time, and the layout geometry derived from the selected range.
//
// The package contains no GUI code. The drawing layer asks the Registry for
// the selected Range, derives a Geometry from it and the current column
// count, and renders only what the geometry describes.
package addrspace

import (
	"fmt"
	"sort"

	"github.com/jetsetilly/memedit/curated"
)

// sentinel errors returned by functions in the addrspace package.
const (
	// InvalidRange is returned by Add() when the range start is beyond the
	// range end.
	InvalidRange = "addrspace: %s: start of range (%#x) is beyond end of range (%#x)"
)

// Range is a named half-open interval of byte addresses. Start is the first
// addressable byte and End is one past the last addressable byte, meaning
// that a Range with Start equal to End is empty.
type Range struct {
	Name  string
	Start uint64
	End   uint64
}

func (r Range) String() string {
	return fmt.Sprintf("%s: %#x to %#x", r.Name, r.Start, r.End)
}

// Len returns the number of addressable bytes in the range.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// Contains returns true if addr falls inside the range.
func (r Range) Contains(addr uint64) bool {
	return addr >= r.Start && addr < r.End
}

// Registry is an ordered collection of named address ranges and the
// record of which of them is currently selected.
//
// Ordering serves two purposes: Names() lists ranges in a deterministic
// (key sorted) order for stable UI listing, while the first range ever
// added is recorded separately because it becomes the initial selection.
//
// The zero value is an empty registry, ready for use.
type Registry struct {
	ranges   map[string]Range
	selected string

	// selection is only meaningful once the first range has been added
	populated bool
}

// Add inserts a range under the given name, replacing any existing range of
// that name. The first range added to the registry becomes the selected
// range. Replacing a range does not disturb the selection.
//
// An error is returned if start is beyond end.
func (reg *Registry) Add(name string, start uint64, end uint64) error {
	if start > end {
		return curated.Errorf(InvalidRange, name, start, end)
	}

	if reg.ranges == nil {
		reg.ranges = make(map[string]Range)
	}

	reg.ranges[name] = Range{Name: name, Start: start, End: end}

	if !reg.populated {
		reg.selected = name
		reg.populated = true
	}

	return nil
}

// Select changes the selected range. Returns false, without changing the
// selection, if no range of that name has been added. Callers that care
// about the failure can note it; it is never an error condition.
func (reg *Registry) Select(name string) bool {
	if _, ok := reg.ranges[name]; !ok {
		return false
	}
	reg.selected = name
	return true
}

// Selected returns the currently selected range.
//
// Selected panics if nothing has been added to the registry. Rendering an
// editor with no address ranges is a programming error and the top-level
// draw functions check for it before anything else; by the time Selected()
// is called a non-empty registry is guaranteed.
func (reg *Registry) Selected() Range {
	if len(reg.ranges) == 0 {
		panic("addrspace: selection from an empty registry")
	}
	return reg.ranges[reg.selected]
}

// SelectedName returns the name of the currently selected range. The empty
// string is returned if nothing has been added yet.
func (reg *Registry) SelectedName() string {
	return reg.selected
}

// Range returns the named range. The second return value is false if no
// range of that name has been added.
func (reg *Registry) Range(name string) (Range, bool) {
	r, ok := reg.ranges[name]
	return r, ok
}

// Names returns every range name in sorted order. Suitable for listing in a
// picker UI, where entries must not move around between frames.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.ranges))
	for n := range reg.ranges {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of ranges in the registry.
func (reg *Registry) Len() int {
	return len(reg.ranges)
}

// Multiple returns true if the registry holds more than one range. The
// region picker is only shown when there is a choice to be made.
func (reg *Registry) Multiple() bool {
	return len(reg.ranges) > 1
}

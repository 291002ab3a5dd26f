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

// Package memedit is an embeddable memory viewer/editor for Dear ImGui
// applications. It draws a hex grid over any byte addressable data the host
// application cares to expose: emulated RAM, a file, a network capture, or
// anything else that can satisfy the read function.
//
// The editor never holds the memory it displays. The host provides a
// ReadFunc and, for writeable memory, a WriteFunc; the editor calls them for
// exactly the bytes that are visible (or being edited) in the current frame.
// Displaying a multi-gigabyte address space is no more expensive than
// displaying a hundred bytes.
//
// Basic use:
//
//	mem := make([]byte, 0x10000)
//
//	ed := memedit.NewEditor("Memory", func(addr uint64) uint8 {
//		return mem[addr]
//	})
//	ed.SetWriteFunc(func(addr uint64, v uint8) {
//		mem[addr] = v
//	})
//	ed.AddRange("RAM", 0x0000, 0x10000)
//
//	// inside the imgui render loop
//	ed.DrawWindow()
//
// DrawWindow() draws the editor in a window of its own. Embedders that want
// the editor inside an existing window can call DrawContents() instead.
//
// More than one address range can be added to an editor. When there are two
// or more ranges a combo box appears in the options area to switch between
// them; the first range to be added is the initial selection.
//
// All rendering options live in the exported Options field and can be
// changed between frames. The Preferences type will save and restore options
// to a prefs file for hosts that want them to persist.
//
// The editor must only be used from the goroutine that owns the imgui
// context, between imgui.NewFrame() and imgui.Render(). The read and write
// functions are called from that same goroutine.
package memedit

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
	"github.com/jetsetilly/memedit/addrspace"
	"github.com/jetsetilly/memedit/assert"
	"github.com/jetsetilly/memedit/clipper"
	"github.com/jetsetilly/memedit/logger"
)

// ReadFunc returns the byte at the given address. The editor calls it only
// for addresses inside the currently selected range.
type ReadFunc func(address uint64) uint8

// WriteFunc stores a byte at the given address. Called once for every
// confirmed edit.
type WriteFunc func(address uint64, value uint8)

// Editor is a memory viewer/editor that renders with Dear ImGui. Use
// NewEditor() to initialise an instance and call DrawWindow() or
// DrawContents() every frame.
//
// An Editor is not safe for concurrent use. It belongs to the goroutine that
// drives the imgui context.
type Editor struct {
	title string

	read     ReadFunc
	write    WriteFunc
	readOnly bool

	ranges addrspace.Registry

	// Options can be adjusted at any time between frames. The grid reflects
	// any changes on the next call to DrawWindow()/DrawContents().
	Options Options

	// fonts assigned with SetFontTable(). TextStyle values in Options index
	// into this slice
	fonts []imgui.Font

	// the row virtualizer. persists between frames so that content height is
	// available to whoever asks for it
	clip clipper.Clipper

	// state that carries from one frame to the next. each editor instance
	// owns its own carry, two editors never interfere
	frame frameCarry

	// the goroutine that draws the editor. adopted on the first draw
	goroutine assert.Goroutine
}

// state remembered between frames.
type frameCarry struct {
	// the natural width of the grid as calculated during the previous frame.
	// used to stop the enclosing window from shrinking below the grid and
	// oscillating
	previousWidth float32

	// the cell the data preview reads from. updated whenever a byte cell is
	// active
	selected     uint64
	hasSelection bool

	// a confirmed edit moves keyboard focus to the next address. the request
	// lives until its cell consumes it or until it goes stale
	focusAddr    uint64
	focusPending bool
}

// requestFocus asks for the keyboard focus to move to the cell at addr on a
// following frame.
func (f *frameCarry) requestFocus(addr uint64) {
	f.focusAddr = addr
	f.focusPending = true
}

// consumeFocus reports whether a focus request is waiting on addr. a consumed
// request is retired.
func (f *frameCarry) consumeFocus(addr uint64) bool {
	if !f.focusPending || f.focusAddr != addr {
		return false
	}
	f.focusPending = false
	return true
}

// expireFocus retires a request that has gone stale: one that was already
// pending when the frame began but neither scrolled the grid nor found its
// cell. a request raised during the frame is left alone so that the grid can
// scroll to it on the next frame.
func (f *frameCarry) expireFocus(pendingAtEntry bool, scrolled bool) {
	if pendingAtEntry && !scrolled {
		f.focusPending = false
	}
}

// NewEditor is the preferred method of initialisation for the Editor type.
// The title is used for the window created by DrawWindow() and to scope
// imgui widget IDs, so two editors in one application should have different
// titles.
//
// At least one address range must be added with AddRange() before the first
// draw.
func NewEditor(title string, read ReadFunc) *Editor {
	return &Editor{
		title:   title,
		read:    read,
		Options: DefaultOptions(),
	}
}

// AddRange registers a named address range with the editor. Start is
// inclusive and end is exclusive. Adding a name a second time replaces the
// earlier range.
//
// The first range to be added becomes the selected range.
func (ed *Editor) AddRange(name string, start uint64, end uint64) error {
	return ed.ranges.Add(name, start, end)
}

// Select makes the named range the one on display. Selecting a name that has
// not been added leaves the selection as it is.
func (ed *Editor) Select(name string) {
	if !ed.ranges.Select(name) {
		logger.Logf("memedit", "select: no range named '%s'", name)
	}
}

// SelectedName returns the name of the range on display. The empty string is
// returned if no ranges have been added yet.
func (ed *Editor) SelectedName() string {
	return ed.ranges.SelectedName()
}

// SetWriteFunc gives the editor a way of writing memory. Without a write
// function the editor must be put into read-only mode with SetReadOnly().
func (ed *Editor) SetWriteFunc(write WriteFunc) {
	ed.write = write
}

// SetReadOnly stops the editor accepting edits. Byte cells can still be
// clicked for the data preview. A read-only editor does not need a write
// function.
func (ed *Editor) SetReadOnly(readOnly bool) {
	ed.readOnly = readOnly
}

// SetFontTable gives the editor the fonts referred to by the TextStyle
// values in Options. Without a font table every text style renders with
// whatever font is current when the editor is drawn.
func (ed *Editor) SetFontTable(fonts []imgui.Font) {
	ed.fonts = fonts
}

// the obligations a host must meet before the editor can draw. failing them
// is a programming error in the host, not a runtime condition, so the
// response is a panic in the same way a nil map write is a panic.
func (ed *Editor) checkContract() {
	if !ed.goroutine.Check() {
		panic("memedit: editor drawn from more than one goroutine")
	}
	if ed.read == nil {
		panic("memedit: editor has no read function")
	}
	if ed.ranges.Len() == 0 {
		panic("memedit: no address ranges have been added to the editor")
	}
	if !ed.readOnly && ed.write == nil {
		panic("memedit: editor accepts edits but has no write function: add one with SetWriteFunc() or mark the editor with SetReadOnly()")
	}
}

// push the font assigned to the text style. returns true if a font was
// pushed, in which case the caller must pop it with imgui.PopFont().
func (ed *Editor) pushFont(style TextStyle) bool {
	idx := int(style)
	if idx < 0 || idx >= len(ed.fonts) {
		return false
	}
	imgui.PushFont(ed.fonts[idx])
	return true
}

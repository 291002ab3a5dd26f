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

	"github.com/jetsetilly/memedit/clipper"
	"github.com/jetsetilly/memedit/test"
)

// a focus request raised during the row loop must survive to the next frame,
// when the grid has the chance to scroll the target cell into view.
func TestFocusRequestLifetime(t *testing.T) {
	var frame frameCarry

	// frame 1: an edit on the last visible row requests focus on a cell
	// below the viewport. the request was not pending when the frame began
	// so it is not expired at the end of the frame
	frame.requestFocus(100)
	frame.expireFocus(false, false)
	test.Equate(t, frame.focusPending, true)

	// frame 2: the request was pending at entry and has scrolled the grid.
	// it stays alive for the cell to consume
	frame.expireFocus(true, true)
	test.Equate(t, frame.focusPending, true)

	// frame 3: the cell is now in view. only the cell at the requested
	// address consumes the request
	test.Equate(t, frame.consumeFocus(99), false)
	test.Equate(t, frame.consumeFocus(100), true)
	test.Equate(t, frame.focusPending, false)

	// a consumed request is gone
	test.Equate(t, frame.consumeFocus(100), false)

	// a request that was pending at entry but neither scrolled the grid nor
	// found its cell is stale
	frame.requestFocus(200)
	frame.expireFocus(true, false)
	test.Equate(t, frame.focusPending, false)
}

func TestFocusScroll(t *testing.T) {
	const lineHeight = 10

	view := clipper.Viewport{ScrollY: 0, Height: 100}

	// rows fully inside the viewport require no scroll
	_, ok := focusScroll(0, lineHeight, view)
	test.Equate(t, ok, false)
	_, ok = focusScroll(9, lineHeight, view)
	test.Equate(t, ok, false)

	// the first row below the viewport is centred
	y, ok := focusScroll(10, lineHeight, view)
	test.Equate(t, ok, true)
	test.Equate(t, y, float32(50))

	// a row far below the viewport
	y, ok = focusScroll(50, lineHeight, view)
	test.Equate(t, ok, true)
	test.Equate(t, y, float32(450))

	// a row above a scrolled viewport. the scroll offset never goes negative
	view = clipper.Viewport{ScrollY: 450, Height: 100}
	y, ok = focusScroll(2, lineHeight, view)
	test.Equate(t, ok, true)
	test.Equate(t, y, float32(0))

	// rows inside the scrolled viewport
	_, ok = focusScroll(45, lineHeight, view)
	test.Equate(t, ok, false)
	_, ok = focusScroll(54, lineHeight, view)
	test.Equate(t, ok, false)
}

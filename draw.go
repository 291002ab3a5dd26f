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
	"fmt"
	"strconv"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit/addrspace"
	"github.com/jetsetilly/memedit/clipper"
)

// DrawWindow draws the editor in an imgui window of its own, using the title
// given to NewEditor(). Closing the window with the close widget sets
// Options.IsOpen to false; set it to true again to reopen.
//
// Must be called every frame from the goroutine that drives the imgui
// context.
func (ed *Editor) DrawWindow() {
	ed.checkContract()

	if !ed.Options.IsOpen {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 100, Y: 100}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 400}, imgui.ConditionFirstUseEver)

	// the grid knows its natural width from the previous frame. stop the
	// window shrinking below that width, otherwise the window and the grid
	// chase one another as the user resizes
	if w := ed.frame.previousWidth; w > 0 {
		w += imgui.CurrentStyle().WindowPadding().X * 2
		imgui.SetNextWindowSizeConstraints(imgui.Vec2{X: w, Y: 0}, imgui.Vec2{X: 4000, Y: 4000})
	}

	open := ed.Options.IsOpen
	if imgui.BeginV(ed.title, &open, imgui.WindowFlagsNone) {
		ed.drawContents()
	}
	imgui.End()

	ed.Options.IsOpen = open
}

// DrawContents draws the editor into the current window or child window. Use
// this instead of DrawWindow() when the editor is embedded in a layout of the
// host application's own.
//
// Must be called every frame from the goroutine that drives the imgui
// context.
func (ed *Editor) DrawContents() {
	ed.checkContract()
	ed.drawContents()
}

func (ed *Editor) drawContents() {
	ed.drawOptions()
	imguiSeparator()

	// geometry is derived after the options have been drawn so that a column
	// count change takes effect in the same frame
	geom := addrspace.NewGeometry(ed.ranges.Selected(), ed.Options.columns())
	met := ed.metrics(geom)

	ed.drawHeader(geom, met)
	ed.drawGrid(geom, met)

	// natural width for next frame's window size constraint
	ed.frame.previousWidth = met.totalWidth
}

// idstr appends an identifier to a widget label, keeping the widgets of two
// editors distinct when both draw into the same host window. the identifier
// is not displayed.
func (ed *Editor) idstr(label string) string {
	return fmt.Sprintf("%s##%s", label, ed.title)
}

func (ed *Editor) drawOptions() {
	if !imgui.CollapsingHeaderV(ed.idstr("Options"), imgui.TreeNodeFlagsDefaultOpen) {
		return
	}

	// region selector. only drawn when there is a choice to be made
	if ed.ranges.Multiple() {
		names := ed.ranges.Names()

		w := 8
		for _, n := range names {
			if len(n) > w {
				w = len(n)
			}
		}

		imguiLabel("Region")
		imgui.PushItemWidth(imguiTextWidth(w + 3))
		if imgui.BeginComboV(ed.idstr("##region"), ed.ranges.SelectedName(), 0) {
			for _, n := range names {
				if imgui.Selectable(n) {
					ed.ranges.Select(n)

					// a selection made in the old region means nothing in
					// the new one
					ed.frame.hasSelection = false
				}
			}
			imgui.EndCombo()
		}
		imgui.PopItemWidth()
	}

	cols := int32(ed.Options.columns())
	imguiLabel("Columns")
	imgui.PushItemWidth(imguiTextWidth(10))
	if imgui.SliderInt(ed.idstr("##columns"), &cols, 1, maxColumns) {
		ed.Options.ColumnCount = int(cols)
	}
	imgui.PopItemWidth()

	imgui.Checkbox(ed.idstr("Show ASCII"), &ed.Options.ShowASCII)
	imguiTooltipSimple("Show the printable representation of each row")
	imgui.SameLineV(0, 15)
	imgui.Checkbox(ed.idstr("Dim zero bytes"), &ed.Options.ShowZeroColor)
	imguiTooltipSimple("Draw bytes of value zero in a color of their own")

	ed.drawPreview()
}

func (ed *Editor) drawPreview() {
	if !imgui.CollapsingHeader(ed.idstr("Data Preview")) {
		return
	}

	opts := &ed.Options.Preview

	imguiLabel("Decode as")
	imgui.PushItemWidth(imguiTextWidth(14))
	if imgui.BeginComboV(ed.idstr("##endianness"), opts.Endianness.String(), 0) {
		for _, e := range endianOptions {
			if imgui.Selectable(e.String()) {
				opts.Endianness = e
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	imgui.SameLineV(0, 5)
	imgui.PushItemWidth(imguiTextWidth(6))
	if imgui.BeginComboV(ed.idstr("##format"), opts.Format.String(), 0) {
		for _, f := range formatOptions {
			if imgui.Selectable(f.String()) {
				opts.Format = f
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	if !ed.frame.hasSelection {
		imgui.Text("(click a byte to decode the value at that address)")
		return
	}

	rng := ed.ranges.Selected()
	geom := addrspace.NewGeometry(rng, ed.Options.columns())

	s, ok := previewValue(ed.read, rng, ed.frame.selected, *opts)
	if !ok {
		s = "n/a"
	}
	imguiLabel(geom.FormatAddress(ed.frame.selected))
	imgui.Text(fmt.Sprintf("= %s", s))
}

// gridMetrics gathers the pixel measurements of the grid for one frame. the
// measurements depend on the fonts, the style and the geometry, any of which
// can change between frames.
type gridMetrics struct {
	// the vertical pitch of one display row, including spacing. the tallest
	// of the three text roles decides it
	lineHeight float32

	// width of the address label column
	addrWidth float32

	// width of one byte cell and the x position of every byte cell in a row,
	// relative to the start of the row
	cellWidth float32
	cellX     []float32

	// x position and per character width of the ASCII sidebar. only valid
	// when the sidebar is being shown
	asciiX     float32
	asciiWidth float32

	// the natural width of the entire grid
	totalWidth float32
}

func (ed *Editor) metrics(geom addrspace.Geometry) gridMetrics {
	var met gridMetrics

	style := imgui.CurrentStyle()
	spacing := style.ItemSpacing()

	popFont := ed.pushFont(ed.Options.AddressTextStyle)
	tallest := imgui.FontSize()
	met.addrWidth = imgui.CalcTextSize(geom.FormatAddress(geom.Range.End), false, 0).X + spacing.X*2
	if popFont {
		imgui.PopFont()
	}

	// byte cells are framed widgets so they measure frame height rather than
	// font height
	popFont = ed.pushFont(ed.Options.ByteTextStyle)
	if h := imgui.FrameHeight(); h > tallest {
		tallest = h
	}
	met.cellWidth = imguiTextWidth(2)
	if popFont {
		imgui.PopFont()
	}

	popFont = ed.pushFont(ed.Options.ASCIITextStyle)
	if h := imgui.FontSize(); h > tallest {
		tallest = h
	}
	met.asciiWidth = imgui.CalcTextSize("X", false, 0).X
	if popFont {
		imgui.PopFont()
	}

	met.lineHeight = tallest + spacing.Y

	// byte cells advance by the cell width plus a single pixel, with a wider
	// gap between chunks
	chunkGap := spacing.X * 2
	x := met.addrWidth
	met.cellX = make([]float32, geom.Columns)
	for c := 0; c < geom.Columns; c++ {
		if c > 0 && c%addrspace.ChunkColumns == 0 {
			x += chunkGap
		}
		met.cellX[c] = x
		x += met.cellWidth + 1
	}

	if ed.Options.ShowASCII {
		met.asciiX = x + chunkGap
		x = met.asciiX + met.asciiWidth*float32(geom.Columns)
	}

	// room on the right for the vertical scrollbar
	met.totalWidth = x + met.cellWidth

	return met
}

// drawHeader draws the column labels above the grid. the header is not part
// of the scrolling child so it stays in place as the grid scrolls.
func (ed *Editor) drawHeader(geom addrspace.Geometry, met gridMetrics) {
	base := imgui.CursorPos()
	leftPad := imgui.CurrentStyle().FramePadding().X

	popFont := ed.pushFont(ed.Options.AddressTextStyle)
	imgui.PushStyleColor(imgui.StyleColorText, ed.Options.AddressColor)

	for c := 0; c < geom.Columns; c++ {
		imgui.SetCursorPos(imgui.Vec2{X: base.X + met.cellX[c] + leftPad, Y: base.Y})
		imgui.Text(fmt.Sprintf("%02X", c))
	}

	imgui.PopStyleColor()
	if popFont {
		imgui.PopFont()
	}

	imgui.SetCursorPos(imgui.Vec2{X: base.X, Y: base.Y + met.lineHeight})
}

func (ed *Editor) drawGrid(geom addrspace.Geometry, met gridMetrics) {
	sz := imgui.Vec2{X: met.totalWidth, Y: imguiRemainingWinHeight()}
	imgui.BeginChildV(ed.idstr("##grid"), sz, false, imgui.WindowFlagsNone)
	defer imgui.EndChild()

	view := clipper.Viewport{
		ScrollY: imgui.ScrollY(),
		Height:  imgui.WindowHeight(),
	}

	// a pending focus request outside the current view scrolls the grid.
	// the request is kept alive so that the cell can consume it once it has
	// come into view
	pending := ed.frame.focusPending
	scrolled := false
	if pending {
		if !geom.Range.Contains(ed.frame.focusAddr) {
			// the region changed while the request was outstanding
			ed.frame.focusPending = false
			pending = false
		} else {
			row := int((ed.frame.focusAddr - geom.Range.Start) / uint64(geom.Columns))
			if y, ok := focusScroll(row, met.lineHeight, view); ok {
				imgui.SetScrollY(y)
				scrolled = true
			}
		}
	}

	rows := ed.clip.Clip(geom.Rows, met.lineHeight, view)
	for row := rows.Start; row < rows.End; row++ {
		ed.drawRow(row, geom, met)
	}

	// the cursor's maximum position tells imgui how tall the content is,
	// keeping the scrollbar honest even though only the visible rows have
	// been submitted
	imgui.SetCursorPos(imgui.Vec2{X: 0, Y: ed.clip.ContentHeight()})

	ed.frame.expireFocus(pending, scrolled)
}

// focusScroll returns the scroll offset that centres row in the viewport. ok
// is false when the row is already fully visible and no scroll is required.
func focusScroll(row int, lineHeight float32, view clipper.Viewport) (float32, bool) {
	top := float32(row) * lineHeight
	if top >= view.ScrollY && top+lineHeight <= view.ScrollY+view.Height {
		return 0, false
	}
	y := top - view.Height/2
	if y < 0 {
		y = 0
	}
	return y, true
}

func (ed *Editor) drawRow(row int, geom addrspace.Geometry, met gridMetrics) {
	y := float32(row) * met.lineHeight
	rowAddr := geom.RowAddress(row)

	imgui.SetCursorPos(imgui.Vec2{X: 0, Y: y})
	popFont := ed.pushFont(ed.Options.AddressTextStyle)
	imgui.PushStyleColor(imgui.StyleColorText, ed.Options.AddressColor)
	imgui.AlignTextToFramePadding()
	imgui.Text(geom.FormatAddress(rowAddr))
	imgui.PopStyleColor()
	if popFont {
		imgui.PopFont()
	}

	popFont = ed.pushFont(ed.Options.ByteTextStyle)
	for c := 0; c < geom.Columns; c++ {
		addr := rowAddr + uint64(c)
		if !geom.Range.Contains(addr) {
			// the final row of the range may be partial
			break
		}
		imgui.SetCursorPos(imgui.Vec2{X: met.cellX[c], Y: y})
		ed.drawCell(addr, geom, met)
	}
	if popFont {
		imgui.PopFont()
	}

	if ed.Options.ShowASCII {
		s := strings.Builder{}
		for c := 0; c < geom.Columns; c++ {
			addr := rowAddr + uint64(c)
			if !geom.Range.Contains(addr) {
				break
			}
			s.WriteByte(asciiByte(ed.read(addr)))
		}

		imgui.SetCursorPos(imgui.Vec2{X: met.asciiX, Y: y})
		popFont = ed.pushFont(ed.Options.ASCIITextStyle)
		imgui.AlignTextToFramePadding()
		imgui.Text(s.String())
		if popFont {
			imgui.PopFont()
		}
	}
}

func (ed *Editor) drawCell(addr uint64, geom addrspace.Geometry, met gridMetrics) {
	v := ed.read(addr)
	s := fmt.Sprintf("%02X", v)
	label := fmt.Sprintf("##%X", addr)

	popColor := false
	if ed.Options.ShowZeroColor && v == 0 {
		imgui.PushStyleColor(imgui.StyleColorText, ed.Options.ZeroColor)
		popColor = true
	}

	// remembered for the selection marker
	pos := imgui.CursorScreenPos()

	imgui.PushItemWidth(met.cellWidth)
	if ed.readOnly {
		imgui.InputTextV(label, &s, imgui.InputTextFlagsReadOnly, nil)
	} else {
		if ed.frame.consumeFocus(addr) {
			imgui.SetKeyboardFocusHere()
		}

		if imguiHexInput(label, 2, &s) {
			if b, err := strconv.ParseUint(s, 16, 8); err == nil {
				ed.write(addr, uint8(b))

				// a confirmed edit advances the keyboard focus to the next
				// address in the range
				if next := addr + 1; next > addr && geom.Range.Contains(next) {
					ed.frame.requestFocus(next)
					ed.frame.selected = next
					ed.frame.hasSelection = true
				}
			}
		}
	}
	imgui.PopItemWidth()

	if popColor {
		imgui.PopStyleColor()
	}

	if imgui.IsItemActive() {
		ed.frame.selected = addr
		ed.frame.hasSelection = true
	}

	imguiTooltip(func() {
		imgui.Text(geom.FormatAddress(addr))
		imgui.Separator()
		imgui.Text(fmt.Sprintf("dec: %d", v))
		imgui.Text(fmt.Sprintf("bin: %08b", v))
	}, true)

	// the selected cell is marked with a triangle in the top-left corner
	if ed.frame.hasSelection && ed.frame.selected == addr {
		sz := imgui.FontSize() * 0.4
		p1 := imgui.Vec2{X: pos.X, Y: pos.Y + sz}
		p2 := imgui.Vec2{X: pos.X + sz, Y: pos.Y}
		dl := imgui.WindowDrawList()
		dl.AddTriangleFilled(pos, p1, p2, imgui.PackedColorFromVec4(ed.Options.SelectColor))
	}
}

// asciiByte returns the printable representation of a byte for the ASCII
// sidebar. unprintable values are represented by the period character.
func asciiByte(v uint8) byte {
	if v < 32 || v >= 128 {
		return '.'
	}
	return v
}

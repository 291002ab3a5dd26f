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
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// return the height of the window from the current cursor position to the
// end of the window frame. useful for sizing the scroll area of a window
// with a static header.
func imguiRemainingWinHeight() float32 {
	return imgui.WindowHeight() - imgui.CursorPosY() - imgui.CurrentStyle().FramePadding().Y*2 - imgui.CurrentStyle().ItemInnerSpacing().Y
}

// returns the minimum Vec2{} required to fit any of the string values listed
// in the arguments.
func imguiGetFrameDim(s string, t ...string) imgui.Vec2 {
	w := imgui.CalcTextSize(s, false, 0)
	for i := range t {
		y := imgui.CalcTextSize(t[i], false, 0)
		if y.X > w.X {
			w = y
		}
	}

	w.Y = imgui.FontSize() + (imgui.CurrentStyle().FramePadding().Y * 2.5)
	w.X += imgui.CurrentStyle().FramePadding().X * 2.5

	return w
}

// returns the pixel width of a text string length characters wide. assumes
// all characters are of the same width. Uses the 'X' character for
// measurement.
func imguiTextWidth(length int) float32 {
	if length < 1 {
		return 0
	}
	return imguiGetFrameDim(strings.Repeat("X", length)).X
}

// imguiLabel aligns text with widgets that have frames (such as combos).
// This is only a graphical alignment, mouse events for the text are not
// passed to the widget.
//
// Where a widget supplies its own label the double hash construct can be
// used to hide it and the label drawn with imguiLabel() instead:
//
//	imguiLabel("Columns")
//	imgui.SliderInt("##columns", &v, s, e)
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// pads imgui.Separator with additional spacing.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}

// imguiTooltip runs the display function in a tooltip if hoverTest is false
// or if the previous imgui item is being hovered over.
func imguiTooltip(f func(), hoverTest bool) {
	if !hoverTest || imgui.IsItemHovered() {
		imgui.BeginTooltip()
		f()
		imgui.EndTooltip()
	}
}

// imguiTooltipSimple is a wrapper for imguiTooltip for the common case of a
// plain text tooltip. multiple lines are split on the newline character.
func imguiTooltipSimple(tooltip string) {
	tooltip = strings.TrimSpace(tooltip)
	if tooltip == "" {
		return
	}
	imguiTooltip(func() {
		for _, s := range strings.Split(tooltip, "\n") {
			imgui.Text(s)
		}
	}, true)
}

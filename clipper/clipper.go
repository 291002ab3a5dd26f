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

// Package clipper computes which rows of a fixed line-height list intersect
// a scroll viewport. It is the virtualization core of the memory editor:
// only the returned band of rows is ever drawn, regardless of how large the
// address space is, while the full scrollable extent is still declared so
// that scrollbar proportions stay correct.
//
// The package is free of any GUI dependency. The drawing layer feeds it the
// live scroll offset and viewport height and is responsible for offsetting
// the draw cursor to RowRange.Start and for declaring ContentHeight() as
// the total extent of the scroll area.
//
// Note that scroll precision degrades for extents beyond 2^24 pixels. This
// is a limitation of single precision coordinates and is shared by every
// immediate mode GUI the clipper is likely to be driven by.
package clipper

// Viewport describes the visible portion of a scroll area for one frame.
//
// ScrollY is the current scroll offset in pixels. Height is the visible
// height of the scroll area. A Height of zero (or less) indicates that the
// viewport has not been measured yet, which is normal on the first frame of
// a new scroll area.
type Viewport struct {
	ScrollY float32
	Height  float32
}

// RowRange is the contiguous band of rows to be drawn this frame. The range
// is half-open: Start is the first row to draw and End is one past the last.
//
// RowRange is derived fresh every frame and should never be stored.
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.End - r.Start
}

// Clipper computes visible row ranges. The zero value is ready to use.
//
// A Clipper instance belongs to a single scroll area. The content height of
// the most recent Clip() is retained so the drawing layer can declare the
// scrollable extent even on frames where nothing is visible.
type Clipper struct {
	contentHeight float32
}

// ContentHeight returns the full scrollable extent, in pixels, as
// calculated by the most recent call to Clip().
func (c *Clipper) ContentHeight() float32 {
	return c.contentHeight
}

// Clip returns the range of rows that intersect the viewport.
//
// The returned range is always clamped to [0, totalRows). A totalRows of
// zero is tolerated and results in an empty range. Clip never mutates the
// scroll position; a ScrollY beyond the scrollable extent is treated as
// though the area is scrolled to the very end.
//
// The calculation is arithmetic on the fixed line height. It does not scan
// the rows, so the cost of a frame is proportional to the viewport and not
// to totalRows.
func (c *Clipper) Clip(totalRows int, lineHeight float32, view Viewport) RowRange {
	if totalRows <= 0 || lineHeight <= 0 {
		c.contentHeight = 0
		return RowRange{}
	}

	c.contentHeight = float32(totalRows) * lineHeight

	// clamp scroll offset to the scrollable extent. out-of-range values can
	// be reported transiently while the scroll area is being resized
	scroll := view.ScrollY
	if scroll < 0 {
		scroll = 0
	}
	if view.Height > 0 {
		max := c.contentHeight - view.Height
		if max < 0 {
			max = 0
		}
		if scroll > max {
			scroll = max
		}
	}

	start := int(scroll / lineHeight)

	// the number of rows that can intersect the viewport. the additional
	// two rows account for partially visible rows at the top and bottom
	// edges
	num := int(view.Height/lineHeight) + 2

	// viewport height is unknown on the very first frame of a scroll area.
	// emit a single row so that the area has a measurable extent for the
	// next frame, rather than laying out every row and discarding most of
	// them
	if view.Height <= 0 {
		num = 1
	}

	if start > totalRows {
		start = totalRows
	}
	end := start + num
	if end > totalRows {
		end = totalRows
	}

	return RowRange{Start: start, End: end}
}

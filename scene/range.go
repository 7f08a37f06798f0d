// seehuhn.de/go/marks - overlays for text ranges
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"slices"

	"seehuhn.de/go/marks"
)

// Range is a text range with explicitly set client rectangles.
type Range struct {
	rects []marks.Rect
}

// NewRange returns a range occupying rects.
func NewRange(rects ...marks.Rect) *Range {
	return &Range{rects: slices.Clone(rects)}
}

// Set replaces the rectangles, as after a reflow.
func (r *Range) Set(rects ...marks.Rect) {
	r.rects = slices.Clone(rects)
}

// Scroll moves all rectangles by (dx, dy).
func (r *Range) Scroll(dx, dy float64) {
	for i := range r.rects {
		r.rects[i] = r.rects[i].Translate(dx, dy)
	}
}

// ClientRects implements [marks.TextRange].
func (r *Range) ClientRects() []marks.Rect {
	return slices.Clone(r.rects)
}

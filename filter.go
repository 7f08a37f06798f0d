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

package marks

import (
	"cmp"
	"slices"
)

// edgeTolerance is the slack, in pixels, allowed on each side before a
// rectangle counts as horizontally enclosing its predecessor.
const edgeTolerance = 1

// tallFactor is the height ratio above which a rectangle sharing a vertical
// edge with its predecessor is taken to be a line box.
const tallFactor = 1.5

// compareRects orders rectangles top to bottom, and thin to thick within a
// line: by Top, then Height, then Width, then Left.
func compareRects(a, b Rect) int {
	return cmp.Or(
		cmp.Compare(a.Top, b.Top),
		cmp.Compare(a.Height, b.Height),
		cmp.Compare(a.Width, b.Width),
		cmp.Compare(a.Left, b.Left),
	)
}

// SortRects sorts rects in place by Top, Height, Width and Left, all
// ascending. After sorting, a smaller fragment always precedes a larger one
// on the same line.
func SortRects(rects []Rect) {
	slices.SortStableFunc(rects, compareRects)
}

// FilterAdjacent drops rectangles which are layout artifacts of overlapping
// inline boxes. The input must be sorted with [SortRects].
//
// Each rectangle is compared with the element just before it in rects,
// whether or not that element was kept. A rectangle B is dropped when,
// relative to its predecessor A,
//   - B extends more than one pixel beyond A on both the left and the right, or
//   - B shares A's left or right edge and is more than 1.5 times as tall.
//
// The first rectangle is always kept. The result is a subsequence of rects.
func FilterAdjacent(rects []Rect) []Rect {
	if len(rects) == 0 {
		return nil
	}
	log := Logger()

	res := make([]Rect, 0, len(rects))
	res = append(res, rects[0])
	for i := 1; i < len(rects); i++ {
		a, b := rects[i-1], rects[i]

		if b.Left < a.Left-edgeTolerance && b.Right() > a.Right()+edgeTolerance {
			log.Debug("discarded rect", "reason", "encloses predecessor", "rect", b, "prev", a)
			continue
		}

		if (b.Left == a.Left || b.Right() == a.Right()) && b.Height > tallFactor*a.Height {
			log.Debug("discarded rect", "reason", "tall box on shared edge", "rect", b, "prev", a)
			continue
		}

		res = append(res, b)
	}
	return res
}

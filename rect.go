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
	"math"

	"seehuhn.de/go/geom/rect"
)

// Rect is an axis-aligned box with the y axis pointing down.
// Client rectangles reported by text ranges are viewport-relative.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Right returns Left+Width.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns Top+Height.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Contains reports whether the point (x, y) lies inside r.
// The top and left edges are inside, the bottom and right edges are not.
func (r Rect) Contains(x, y float64) bool {
	return r.Top <= y && r.Left <= x && r.Bottom() > y && r.Right() > x
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.Right() <= r.Right() && other.Left >= r.Left &&
		other.Top >= r.Top && other.Bottom() <= r.Bottom()
}

// Translate returns r moved by dx horizontally and dy vertically.
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	top := min(r.Top, other.Top)
	left := min(r.Left, other.Left)
	return Rect{
		Top:    top,
		Left:   left,
		Width:  max(r.Right(), other.Right()) - left,
		Height: max(r.Bottom(), other.Bottom()) - top,
	}
}

// Geom converts r to device-space coordinates, where LLy is the top edge
// since the y axis points down.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{LLx: r.Left, LLy: r.Top, URx: r.Right(), URy: r.Bottom()}
}

// rectKey is an exact encoding of a Rect. Two rectangles have the same key
// if and only if all four fields are bit-identical.
type rectKey [4]uint64

func (r Rect) key() rectKey {
	return rectKey{
		math.Float64bits(r.Top),
		math.Float64bits(r.Left),
		math.Float64bits(r.Width),
		math.Float64bits(r.Height),
	}
}

// Dedupe returns the distinct rectangles of rects. Nested inline elements
// often report coincident boxes; these are collapsed here. No tolerance is
// applied. The result keeps the order of first occurrence, but callers which
// need a specific order should sort it.
func Dedupe(rects []Rect) []Rect {
	if len(rects) == 0 {
		return nil
	}
	seen := make(map[rectKey]struct{}, len(rects))
	res := make([]Rect, 0, len(rects))
	for _, r := range rects {
		k := r.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, r)
	}
	return res
}

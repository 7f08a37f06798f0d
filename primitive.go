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

import "seehuhn.de/go/pdf/graphics"

// Primitive is one paint element emitted by a render policy.
// Coordinates are relative to the overlay plane.
//
// The concrete types are [FillRect], [BorderRect] and [Line].
type Primitive interface {
	// Bounds returns the geometric bounding box, excluding any stroke.
	Bounds() Rect

	isPrimitive()
}

// FillRect is a filled rectangle.
type FillRect struct {
	X, Y          float64
	Width, Height float64
}

func (p FillRect) Bounds() Rect {
	return Rect{Top: p.Y, Left: p.X, Width: p.Width, Height: p.Height}
}

func (FillRect) isPrimitive() {}

// BorderRect is a rectangle with no fill. It paints nothing unless the host
// styles its border, but it takes part in hit testing.
type BorderRect struct {
	X, Y          float64
	Width, Height float64
}

func (p BorderRect) Bounds() Rect {
	return Rect{Top: p.Y, Left: p.X, Width: p.Width, Height: p.Height}
}

func (BorderRect) isPrimitive() {}

// Line is a stroked straight line segment.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Cap    graphics.LineCapStyle
	Color  string
}

func (p Line) Bounds() Rect {
	left, right := min(p.X1, p.X2), max(p.X1, p.X2)
	top, bottom := min(p.Y1, p.Y2), max(p.Y1, p.Y2)
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}
}

func (Line) isPrimitive() {}

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

// Policy decides how a mark turns its rectangles into paint primitives.
// The implementations are [Highlight] and [Underline].
type Policy interface {
	paint(rects []Rect, ctx paintContext) []Primitive
}

// paintContext carries what a policy needs besides the rectangles.
type paintContext struct {
	offset    Rect // box of the mark surface
	container Rect // box of the container
	settings  Settings
}

// x converts a viewport x coordinate to plane coordinates.
func (c paintContext) x(v float64) float64 {
	return v - c.offset.Left + c.container.Left
}

// y converts a viewport y coordinate to plane coordinates.
func (c paintContext) y(v float64) float64 {
	return v - c.offset.Top + c.container.Top
}

// Highlight fills one rectangle per line of the range.
//
// Rectangles are sorted and passed through [FilterAdjacent] first. If the
// settings give both a line spacing and a font size, each rectangle is
// painted with height fontSize*lineSpacing, centred on the original.
type Highlight struct{}

func (Highlight) paint(rects []Rect, ctx paintContext) []Primitive {
	SortRects(rects)
	rects = FilterAdjacent(rects)
	if len(rects) == 0 {
		return nil
	}

	lh, normalise := lineHeight(ctx.settings)

	res := make([]Primitive, 0, len(rects))
	for _, r := range rects {
		height := r.Height
		y := ctx.y(r.Top)
		if normalise {
			height = lh
			y -= (height - r.Height) / 2
		}
		res = append(res, FillRect{
			X:      ctx.x(r.Left),
			Y:      y,
			Width:  r.Width,
			Height: height,
		})
	}
	return res
}

// DefaultUnderlineColor is the stroke colour of underlines without an
// explicit Color.
const DefaultUnderlineColor = "black"

// Underline draws an unfilled box and a one pixel baseline for every
// distinct rectangle of the range. Unlike [Highlight], it neither filters
// the rectangles nor normalises line heights.
type Underline struct {
	// Color is the stroke colour. The empty string means
	// DefaultUnderlineColor.
	Color string
}

func (u Underline) paint(rects []Rect, ctx paintContext) []Primitive {
	if len(rects) == 0 {
		return nil
	}
	color := u.Color
	if color == "" {
		color = DefaultUnderlineColor
	}

	res := make([]Primitive, 0, 2*len(rects))
	for _, r := range rects {
		x := ctx.x(r.Left)
		y := ctx.y(r.Top)
		base := y + r.Height - 1
		res = append(res,
			BorderRect{X: x, Y: y, Width: r.Width, Height: r.Height},
			Line{
				X1: x, Y1: base,
				X2: x + r.Width, Y2: base,
				Width: 1,
				Cap:   graphics.LineCapSquare,
				Color: color,
			},
		)
	}
	return res
}

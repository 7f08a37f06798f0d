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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke paints the outline of p with the current Width and Cap.
// The path must consist of straight segments, as for [Rasterizer.FillNonZero].
// Every segment is stroked on its own and capped at both ends. Joins are not
// drawn, which is exact for the single segments used by underlines.
func (r *Rasterizer) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.outline = r.outline[:0]
	var offsets []int

	addSegment := func(a, b vec.Vec2) {
		offsets = r.appendSegmentOutline(offsets, a, b)
	}

	var current, start vec.Vec2
	moved := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current, start = pts[0], pts[0]
			moved = true
		case path.CmdLineTo:
			addSegment(current, pts[0])
			current = pts[0]
		case path.CmdClose:
			if moved {
				addSegment(current, start)
			}
			current = start
		}
	}

	if len(offsets) > 0 {
		r.fillPolygons(offsets, emit)
	}
}

// appendSegmentOutline appends the outline polygons of the stroked segment
// a-b to r.outline and returns offsets extended by their start indices.
func (r *Rasterizer) appendSegmentOutline(offsets []int, a, b vec.Vec2) []int {
	h := r.Width / 2
	d := b.Sub(a)
	length := d.Length()

	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapSquare:
			offsets = append(offsets, len(r.outline))
			r.outline = append(r.outline,
				vec.Vec2{X: a.X - h, Y: a.Y - h},
				vec.Vec2{X: a.X + h, Y: a.Y - h},
				vec.Vec2{X: a.X + h, Y: a.Y + h},
				vec.Vec2{X: a.X - h, Y: a.Y + h},
			)
		case graphics.LineCapRound:
			offsets = append(offsets, len(r.outline))
			r.appendArc(a, vec.Vec2{X: 1}, vec.Vec2{X: 0, Y: 1}, h, 2*math.Pi)
		}
		return offsets
	}

	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(h))
		b = b.Add(t.Mul(h))
	}

	offsets = append(offsets, len(r.outline))
	r.outline = append(r.outline,
		a.Add(n.Mul(h)),
		b.Add(n.Mul(h)),
		b.Sub(n.Mul(h)),
		a.Sub(n.Mul(h)),
	)

	if r.Cap == graphics.LineCapRound {
		// half discs beyond each end, with the orientation of the body
		offsets = append(offsets, len(r.outline))
		r.appendArc(b, n, t, h, math.Pi)
		offsets = append(offsets, len(r.outline))
		r.appendArc(a, n.Mul(-1), t.Mul(-1), h, math.Pi)
	}
	return offsets
}

// appendArc appends points c + h*(cos θ u + sin θ v) for θ from 0 to
// sweep. The step size keeps the device space error below Flatness.
func (r *Rasterizer) appendArc(c, u, v vec.Vec2, h, sweep float64) {
	radius := h * math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3]-r.CTM[1]*r.CTM[2]))
	step := math.Pi / 2
	if radius > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/radius)
	}
	n := max(int(math.Ceil(sweep/step)), 4)

	for i := range n + 1 {
		theta := sweep * float64(i) / float64(n)
		if sweep == 2*math.Pi && i == n {
			break
		}
		r.outline = append(r.outline, c.Add(u.Mul(h*math.Cos(theta))).Add(v.Mul(h*math.Sin(theta))))
	}
}

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

// Package raster paints overlay layers into images.
//
// The [Rasterizer] computes anti-aliased pixel coverage for vector paths
// with the nonzero winding rule, using exact area coverage per pixel.
// [Painter] uses it to composite the primitives of [marks.Layer] values.
// [VectorPainter] does the same with golang.org/x/image/vector.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer converts paths to pixel coverage, from 0 (outside) to 1
// (inside). Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output. Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the tolerance, in device pixels, for approximating
	// round caps by line segments. Must be positive.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	// Cap is the style of stroke end points.
	Cap graphics.LineCapStyle

	edges     []edge
	active    []int
	cover     []float32 // per pixel change of the winding count; reused for output
	area      []float32 // per pixel area contribution
	crossings []float64
	outline   []vec.Vec2

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM, a stroke width of 1 and butt caps.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills p using the nonzero winding rule. The path must consist
// of straight segments; curve commands are skipped. Coverage is passed to
// emit one row at a time; the slice is only valid during the call.
func (r *Rasterizer) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current, start = pts[0], pts[0]
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// fills close open subpaths implicitly
	if current != start {
		r.addEdge(current, start)
	}
	r.scan(emit)
}

// fillPolygons fills the closed polygons stored in r.outline, separated at
// the given offsets.
func (r *Rasterizer) fillPolygons(offsets []int, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	for i, from := range offsets {
		to := len(r.outline)
		if i+1 < len(offsets) {
			to = offsets[i+1]
		}
		poly := r.outline[from:to]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.devXMin, r.devYMin = math.Inf(1), math.Inf(1)
	r.devXMax, r.devYMax = math.Inf(-1), math.Inf(-1)
}

// addEdge transforms the segment p0-p1 to device space and records it.
// Horizontal segments do not change the winding count and are skipped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// scan walks the scanlines covered by the collected edges, keeping a list
// of active edges, and emits the integrated coverage of each row.
func (r *Rasterizer) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yTop, yBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed by x-xMin. Segments left of the buffer
// are credited to its first pixel. It reports whether e touched the
// scanline at all.
//
// For a piece of edge with vertical extent dy inside one pixel, cover gets
// ±dy and area gets ±dy times the fraction of the pixel right of the
// piece. Integrating cover from the left and adding area gives the signed
// area of the path inside each pixel.
func (r *Rasterizer) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft >= xMax {
		return true
	}
	if pixRight < xMin {
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	}

	// split the piece where it crosses vertical pixel boundaries
	r.crossings = append(r.crossings[:0], yTop, yBot)
	if pixLeft != pixRight {
		dydx := 1 / e.dxdy
		for x := pixLeft + 1; x <= pixRight; x++ {
			if yx := e.y0 + dydx*(float64(x)-e.x0); yx > yTop && yx < yBot {
				r.crossings = append(r.crossings, yx)
			}
		}
		slices.Sort(r.crossings)
	}

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)
		xMid := e.xAt((y0 + y1) / 2)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			r.cover[0] += c
			r.area[0] += c
		case pix < xMax:
			frac := xMid - float64(pix)
			r.cover[pix-xMin] += c
			r.area[pix-xMin] += c * float32(1-frac)
		}
	}
	return true
}

// integrateNonZero turns accumulated cover and area values into coverage,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of its start. It returns nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for an edge
	// to contribute coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a stroke segment is
	// treated as a point.
	zeroLengthThreshold = 1e-10
)

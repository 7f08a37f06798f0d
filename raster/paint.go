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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/marks"
)

// Theme chooses the colours of painted primitives.
type Theme struct {
	// Fill is the colour of filled rectangles in layers without a class
	// listed in Classes.
	Fill color.Color

	// Classes maps layer classes to fill colours.
	Classes map[string]color.Color
}

// DefaultTheme fills highlights with translucent yellow.
func DefaultTheme() Theme {
	return Theme{Fill: color.NRGBA{R: 255, G: 255, B: 0, A: 77}}
}

// fillColor returns the fill colour for a layer.
func (t Theme) fillColor(l marks.Layer) color.Color {
	for _, c := range l.Classes {
		if col, ok := t.Classes[c]; ok {
			return col
		}
	}
	if t.Fill == nil {
		return color.Black
	}
	return t.Fill
}

// strokeColor resolves a line colour name. Names are SVG colour keywords;
// unknown names give black.
func strokeColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	marks.Logger().Warn("unknown stroke colour, using black", "color", name)
	return color.Black
}

// Painter composites overlay layers onto an image with a [Rasterizer].
type Painter struct {
	Theme Theme

	r    *Rasterizer
	mask *image.Alpha
}

// NewPainter returns a Painter using theme.
func NewPainter(theme Theme) *Painter {
	return &Painter{
		Theme: theme,
		r:     NewRasterizer(rect.Rect{}),
	}
}

// Paint draws layers onto dst in order. Layer coordinates are taken to be
// relative to the top left corner of dst. Unfilled rectangles paint
// nothing.
func (p *Painter) Paint(dst draw.Image, layers []marks.Layer) {
	b := dst.Bounds()
	if p.mask == nil || p.mask.Bounds() != b {
		p.mask = image.NewAlpha(b)
	}
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}

	for _, l := range layers {
		fill := image.NewUniform(p.Theme.fillColor(l))
		for _, prim := range l.Primitives {
			if outside(extent(prim, l.OriginX, l.OriginY), clip) {
				continue
			}
			p.r.Reset(clip)
			switch prim := prim.(type) {
			case marks.FillRect:
				box := prim.Bounds().Translate(l.OriginX, l.OriginY)
				p.composite(dst, fill, func(emit func(int, int, []float32)) {
					p.r.FillNonZero(rectPath(box), emit)
				})
			case marks.Line:
				p.r.Width = prim.Width
				p.r.Cap = prim.Cap
				a := vec.Vec2{X: prim.X1 + l.OriginX, Y: prim.Y1 + l.OriginY}
				c := vec.Vec2{X: prim.X2 + l.OriginX, Y: prim.Y2 + l.OriginY}
				p.composite(dst, image.NewUniform(strokeColor(prim.Color)), func(emit func(int, int, []float32)) {
					p.r.Stroke(segmentPath(a, c), emit)
				})
			}
		}
	}
}

// extent returns the device-space area prim can paint when its layer origin
// is at (dx, dy). Lines are padded by half their width to cover the stroke
// and its caps.
func extent(prim marks.Primitive, dx, dy float64) rect.Rect {
	box := prim.Bounds().Translate(dx, dy).Geom()
	if l, ok := prim.(marks.Line); ok {
		pad := l.Width / 2
		box.LLx -= pad
		box.LLy -= pad
		box.URx += pad
		box.URy += pad
	}
	return box
}

// outside reports whether box and clip share no area.
func outside(box, clip rect.Rect) bool {
	return box.URx <= clip.LLx || box.LLx >= clip.URx ||
		box.URy <= clip.LLy || box.LLy >= clip.URy
}

// composite rasterises one shape into the mask and draws src through it.
func (p *Painter) composite(dst draw.Image, src image.Image, raster func(emit func(y, xMin int, coverage []float32))) {
	bbox := image.Rectangle{}
	raster(func(y, xMin int, coverage []float32) {
		row := p.mask.Pix[p.mask.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
		bbox = bbox.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if bbox.Empty() {
		return
	}
	draw.DrawMask(dst, bbox, src, image.Point{}, p.mask, bbox.Min, draw.Over)
	for y := bbox.Min.Y; y < bbox.Max.Y; y++ {
		clear(p.mask.Pix[p.mask.PixOffset(bbox.Min.X, y):p.mask.PixOffset(bbox.Max.X, y)])
	}
}

// rectPath returns the outline of r as a closed path.
func rectPath(r marks.Rect) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		pts := []vec.Vec2{
			{X: r.Left, Y: r.Top},
			{X: r.Right(), Y: r.Top},
			{X: r.Right(), Y: r.Bottom()},
			{X: r.Left, Y: r.Bottom()},
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// segmentPath returns the open path from a to b.
func segmentPath(a, b vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{a}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{b})
	}
}

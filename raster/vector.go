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
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/marks"
)

// VectorPainter composites overlay layers using golang.org/x/image/vector.
// Its output matches [Painter] up to rounding; it serves as a cross-check
// and as a faster alternative for large images.
type VectorPainter struct {
	Theme Theme

	z       *vector.Rasterizer
	outline *Rasterizer // only used to build stroke outlines
}

// NewVectorPainter returns a VectorPainter using theme.
func NewVectorPainter(theme Theme) *VectorPainter {
	return &VectorPainter{
		Theme:   theme,
		z:       vector.NewRasterizer(0, 0),
		outline: NewRasterizer(rect.Rect{}),
	}
}

// Paint draws layers onto dst in order, like [Painter.Paint].
func (p *VectorPainter) Paint(dst draw.Image, layers []marks.Layer) {
	b := dst.Bounds()
	// vector.Rasterizer works in coordinates relative to b.Min
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	clip := rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}

	for _, l := range layers {
		fill := image.NewUniform(p.Theme.fillColor(l))
		for _, prim := range l.Primitives {
			if outside(extent(prim, l.OriginX-ox, l.OriginY-oy), clip) {
				continue
			}
			switch prim := prim.(type) {
			case marks.FillRect:
				r := prim.Bounds().Translate(l.OriginX-ox, l.OriginY-oy)
				p.z.Reset(b.Dx(), b.Dy())
				p.polygon([]vec.Vec2{
					{X: r.Left, Y: r.Top},
					{X: r.Right(), Y: r.Top},
					{X: r.Right(), Y: r.Bottom()},
					{X: r.Left, Y: r.Bottom()},
				})
				p.z.Draw(dst, b, fill, image.Point{})
			case marks.Line:
				o := p.outline
				o.Reset(rect.Rect{})
				o.Width = prim.Width
				o.Cap = prim.Cap
				o.outline = o.outline[:0]
				a := vec.Vec2{X: prim.X1 + l.OriginX - ox, Y: prim.Y1 + l.OriginY - oy}
				c := vec.Vec2{X: prim.X2 + l.OriginX - ox, Y: prim.Y2 + l.OriginY - oy}
				offsets := o.appendSegmentOutline(nil, a, c)

				p.z.Reset(b.Dx(), b.Dy())
				for i, from := range offsets {
					to := len(o.outline)
					if i+1 < len(offsets) {
						to = offsets[i+1]
					}
					p.polygon(o.outline[from:to])
				}
				p.z.Draw(dst, b, image.NewUniform(strokeColor(prim.Color)), image.Point{})
			}
		}
	}
}

func (p *VectorPainter) polygon(pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	p.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.z.ClosePath()
}

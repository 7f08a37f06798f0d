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

// Plane is an absolutely positioned overlay plane inside a [Container].
type Plane struct {
	container   *Container
	pos         [4]float64
	important   [4]bool
	hitTestable bool
	surfaces    []*Surface
}

// SetPosition implements [marks.Positioner]. A value written with
// important set can only be replaced by another important value.
func (p *Plane) SetPosition(pos marks.Position, px float64, important bool) {
	if pos < marks.PosTop || pos > marks.PosWidth {
		return
	}
	if p.important[pos] && !important {
		return
	}
	p.pos[pos] = px
	p.important[pos] = important
}

// Box returns the position of the plane relative to its container.
func (p *Plane) Box() marks.Rect {
	return marks.Rect{
		Top:    p.pos[marks.PosTop],
		Left:   p.pos[marks.PosLeft],
		Width:  p.pos[marks.PosWidth],
		Height: p.pos[marks.PosHeight],
	}
}

// Important reports whether pos was last written with priority.
func (p *Plane) Important(pos marks.Position) bool {
	return p.important[pos]
}

// BoundingClientRect returns the viewport box of the plane.
func (p *Plane) BoundingClientRect() marks.Rect {
	c := p.container.BoundingClientRect()
	return p.Box().Translate(c.Left, c.Top)
}

// SetHitTestable implements [marks.Plane].
func (p *Plane) SetHitTestable(on bool) {
	p.hitTestable = on
}

// HitTestable reports whether the plane receives pointer events itself.
func (p *Plane) HitTestable() bool {
	return p.hitTestable
}

// NewSurface implements [marks.Plane].
func (p *Plane) NewSurface() marks.Surface {
	s := &Surface{plane: p}
	p.surfaces = append(p.surfaces, s)
	return s
}

// Remove implements [marks.Plane]. Surfaces of other planes are ignored.
func (p *Plane) Remove(s marks.Surface) {
	idx := slices.IndexFunc(p.surfaces, func(have *Surface) bool {
		return marks.Surface(have) == s
	})
	if idx < 0 {
		return
	}
	p.surfaces[idx].plane = nil
	p.surfaces = slices.Delete(p.surfaces, idx, idx+1)
}

// Surfaces returns the attached surfaces in paint order.
func (p *Plane) Surfaces() []*Surface {
	return slices.Clone(p.surfaces)
}

// Layers returns a snapshot of the paint output of all surfaces, in paint
// order, with origins relative to the container.
func (p *Plane) Layers() []marks.Layer {
	res := make([]marks.Layer, 0, len(p.surfaces))
	for _, s := range p.surfaces {
		res = append(res, marks.Layer{
			OriginX:    p.pos[marks.PosLeft],
			OriginY:    p.pos[marks.PosTop],
			Classes:    s.Classes(),
			Primitives: s.Children(),
		})
	}
	return res
}

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

// Boxed is anything with a viewport-relative bounding box.
type Boxed interface {
	BoundingClientRect() Rect
}

// Element is a scrollable host element. ScrollWidth and ScrollHeight give
// the extent of its content, which may exceed the visible box.
type Element interface {
	Boxed
	ScrollWidth() float64
	ScrollHeight() float64
}

// Position names one of the positioning properties of a surface.
type Position int

// These are the properties written by [ApplyBox].
const (
	PosTop Position = iota
	PosLeft
	PosHeight
	PosWidth
)

func (p Position) String() string {
	switch p {
	case PosTop:
		return "top"
	case PosLeft:
		return "left"
	case PosHeight:
		return "height"
	case PosWidth:
		return "width"
	default:
		return "unknown"
	}
}

// Positioner is a surface which can be placed inside its container.
// If important is true, the value overrides any competing style.
type Positioner interface {
	SetPosition(p Position, px float64, important bool)
}

// BoxRelativeTo returns the box of el relative to container. The size is
// the scrollable content extent of el rather than its visible box, so that
// an overlay covering this box also covers content scrolled out of view.
func BoxRelativeTo(el Element, container Boxed) Rect {
	offset := container.BoundingClientRect()
	r := el.BoundingClientRect()
	return Rect{
		Top:    r.Top - offset.Top,
		Left:   r.Left - offset.Left,
		Height: el.ScrollHeight(),
		Width:  el.ScrollWidth(),
	}
}

// ApplyBox positions s at box. All four values are applied with priority,
// so external styling cannot shift the surface.
func ApplyBox(s Positioner, box Rect) {
	s.SetPosition(PosTop, box.Top, true)
	s.SetPosition(PosLeft, box.Left, true)
	s.SetPosition(PosHeight, box.Height, true)
	s.SetPosition(PosWidth, box.Width, true)
}

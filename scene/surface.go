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
	"maps"
	"slices"

	"seehuhn.de/go/marks"
)

// Surface is the paint surface of one mark.
type Surface struct {
	plane     *Plane
	children  []marks.Primitive
	data      map[string]string
	attrs     map[string]string
	classes   []string
	listeners []func(marks.Event)
	appends   int
}

// origin returns the viewport position of the plane origin. A detached
// surface has its origin at the viewport origin.
func (s *Surface) origin() (x, y float64) {
	if s.plane == nil {
		return 0, 0
	}
	r := s.plane.BoundingClientRect()
	return r.Left, r.Top
}

// BoundingClientRect returns the union of the child boxes. An empty
// surface reports a zero-size box at the plane origin.
func (s *Surface) BoundingClientRect() marks.Rect {
	rects := s.ChildRects()
	if len(rects) == 0 {
		x, y := s.origin()
		return marks.Rect{Top: y, Left: x}
	}
	box := rects[0]
	for _, r := range rects[1:] {
		box = box.Union(r)
	}
	return box
}

// ChildRects implements [marks.Surface].
func (s *Surface) ChildRects() []marks.Rect {
	if len(s.children) == 0 {
		return nil
	}
	x, y := s.origin()
	res := make([]marks.Rect, len(s.children))
	for i, c := range s.children {
		res[i] = c.Bounds().Translate(x, y)
	}
	return res
}

// Clear implements [marks.Surface].
func (s *Surface) Clear() {
	s.children = nil
}

// Append implements [marks.Surface].
func (s *Surface) Append(children ...marks.Primitive) {
	s.children = append(s.children, children...)
	s.appends++
}

// Children returns the painted primitives in paint order.
func (s *Surface) Children() []marks.Primitive {
	return slices.Clone(s.children)
}

// Appends returns how often [Surface.Append] was called.
func (s *Surface) Appends() int {
	return s.appends
}

// Detached reports whether the surface has been removed from its plane.
func (s *Surface) Detached() bool {
	return s.plane == nil
}

// SetData implements [marks.Surface].
func (s *Surface) SetData(key, value string) {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	s.data[key] = value
}

// Data returns a copy of the data entries.
func (s *Surface) Data() map[string]string {
	return maps.Clone(s.data)
}

// SetAttribute implements [marks.Surface].
func (s *Surface) SetAttribute(key, value string) {
	if s.attrs == nil {
		s.attrs = make(map[string]string)
	}
	s.attrs[key] = value
}

// Attributes returns a copy of the attributes.
func (s *Surface) Attributes() map[string]string {
	return maps.Clone(s.attrs)
}

// AddClass adds class unless it is already present.
func (s *Surface) AddClass(class string) {
	if !slices.Contains(s.classes, class) {
		s.classes = append(s.classes, class)
	}
}

// RemoveClass removes class if it is present.
func (s *Surface) RemoveClass(class string) {
	s.classes = slices.DeleteFunc(s.classes, func(c string) bool {
		return c == class
	})
}

// Classes returns the classes in the order they were added.
func (s *Surface) Classes() []string {
	return slices.Clone(s.classes)
}

// Listen registers fn to receive events dispatched to the surface.
func (s *Surface) Listen(fn func(marks.Event)) {
	s.listeners = append(s.listeners, fn)
}

// DispatchEvent implements [marks.Surface].
func (s *Surface) DispatchEvent(e marks.Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

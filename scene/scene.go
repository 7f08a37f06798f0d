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

// Package scene is an in-memory host for overlay panes.
//
// It models just enough of a document to drive [marks.Pane]: elements with
// a viewport box and a scrollable content size, containers which create
// overlay planes, mark surfaces which record their primitives, and static
// text ranges. Tests and exporters use it in place of a real document.
package scene

import (
	"slices"

	"seehuhn.de/go/marks"
)

// Element is a scrollable element with a fixed viewport box.
// It reports events passed to [Element.Emit] to its subscribers.
type Element struct {
	box          marks.Rect
	scrollWidth  float64
	scrollHeight float64

	subs    map[int]subscription
	nextSub int
}

type subscription struct {
	kinds []marks.EventKind
	fn    func(marks.Event)
}

// NewElement returns an element with the given viewport box. The content
// size starts out equal to the box size.
func NewElement(box marks.Rect) *Element {
	return &Element{
		box:          box,
		scrollWidth:  box.Width,
		scrollHeight: box.Height,
	}
}

// SetBox moves or resizes the element.
func (e *Element) SetBox(box marks.Rect) {
	e.box = box
}

// SetScrollSize sets the size of the element content.
func (e *Element) SetScrollSize(width, height float64) {
	e.scrollWidth = width
	e.scrollHeight = height
}

// BoundingClientRect implements [marks.Boxed].
func (e *Element) BoundingClientRect() marks.Rect { return e.box }

// ScrollWidth implements [marks.Element].
func (e *Element) ScrollWidth() float64 { return e.scrollWidth }

// ScrollHeight implements [marks.Element].
func (e *Element) ScrollHeight() float64 { return e.scrollHeight }

// Subscribe implements [marks.EventSource].
func (e *Element) Subscribe(kinds []marks.EventKind, fn func(marks.Event)) func() {
	if e.subs == nil {
		e.subs = make(map[int]subscription)
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = subscription{kinds: slices.Clone(kinds), fn: fn}
	return func() {
		delete(e.subs, id)
	}
}

// Emit delivers ev to all subscribers interested in its kind, in
// subscription order.
func (e *Element) Emit(ev marks.Event) {
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		sub, ok := e.subs[id]
		if ok && slices.Contains(sub.kinds, ev.Kind) {
			sub.fn(ev)
		}
	}
}

// Container is an element which hosts overlay planes.
type Container struct {
	Element
	planes []*Plane
}

// NewContainer returns a container with the given viewport box.
func NewContainer(box marks.Rect) *Container {
	return &Container{Element: *NewElement(box)}
}

// NewPlane implements [marks.Container].
func (c *Container) NewPlane() marks.Plane {
	p := &Plane{container: c, hitTestable: true}
	c.planes = append(c.planes, p)
	return p
}

// Planes returns the planes of c in creation order.
func (c *Container) Planes() []*Plane {
	return slices.Clone(c.planes)
}

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
	"testing"

	"seehuhn.de/go/marks"
)

func TestElementEvents(t *testing.T) {
	e := NewElement(marks.Rect{Width: 10, Height: 10})

	var a, b []marks.EventKind
	cancelA := e.Subscribe([]marks.EventKind{marks.Click, marks.MouseUp}, func(ev marks.Event) {
		a = append(a, ev.Kind)
	})
	e.Subscribe([]marks.EventKind{marks.Click}, func(ev marks.Event) {
		b = append(b, ev.Kind)
	})

	e.Emit(marks.Event{Kind: marks.Click})
	e.Emit(marks.Event{Kind: marks.MouseUp})
	e.Emit(marks.Event{Kind: marks.KeyDown})
	cancelA()
	e.Emit(marks.Event{Kind: marks.Click})

	if !slices.Equal(a, []marks.EventKind{marks.Click, marks.MouseUp}) {
		t.Errorf("subscriber a got %v", a)
	}
	if !slices.Equal(b, []marks.EventKind{marks.Click, marks.Click}) {
		t.Errorf("subscriber b got %v", b)
	}
}

func TestElementScrollSize(t *testing.T) {
	e := NewElement(marks.Rect{Width: 30, Height: 40})
	if e.ScrollWidth() != 30 || e.ScrollHeight() != 40 {
		t.Errorf("initial scroll size %gx%g, want 30x40", e.ScrollWidth(), e.ScrollHeight())
	}
	e.SetScrollSize(30, 400)
	if e.ScrollHeight() != 400 {
		t.Errorf("ScrollHeight() = %g, want 400", e.ScrollHeight())
	}
}

func TestSurfaceBox(t *testing.T) {
	c := NewContainer(marks.Rect{Top: 100, Left: 10, Width: 500, Height: 500})
	p := c.NewPlane().(*Plane)
	marks.ApplyBox(p, marks.Rect{Top: 5, Left: 7, Width: 100, Height: 100})
	s := p.NewSurface().(*Surface)

	// an empty surface sits at the plane origin
	want := marks.Rect{Top: 105, Left: 17}
	if got := s.BoundingClientRect(); got != want {
		t.Errorf("empty box = %+v, want %+v", got, want)
	}

	s.Append(
		marks.FillRect{X: 0, Y: 0, Width: 10, Height: 5},
		marks.FillRect{X: 20, Y: 10, Width: 10, Height: 5},
	)
	want = marks.Rect{Top: 105, Left: 17, Width: 30, Height: 15}
	if got := s.BoundingClientRect(); got != want {
		t.Errorf("box = %+v, want %+v", got, want)
	}
	rects := s.ChildRects()
	if len(rects) != 2 || rects[1] != (marks.Rect{Top: 115, Left: 37, Width: 10, Height: 5}) {
		t.Errorf("ChildRects() = %v", rects)
	}

	s.Clear()
	if len(s.Children()) != 0 || s.Appends() != 1 {
		t.Errorf("after Clear: %d children, %d appends", len(s.Children()), s.Appends())
	}
}

func TestPlaneRemove(t *testing.T) {
	c := NewContainer(marks.Rect{})
	p := c.NewPlane().(*Plane)
	other := c.NewPlane().(*Plane)
	a := p.NewSurface()
	b := p.NewSurface()
	foreign := other.NewSurface()

	p.Remove(foreign)
	p.Remove(a)
	if got := p.Surfaces(); len(got) != 1 || marks.Surface(got[0]) != b {
		t.Errorf("surfaces after removal: %v", got)
	}
	if !a.(*Surface).Detached() || foreign.(*Surface).Detached() {
		t.Error("wrong surface detached")
	}
	if len(c.Planes()) != 2 {
		t.Errorf("container has %d planes, want 2", len(c.Planes()))
	}
}

func TestPlaneLayers(t *testing.T) {
	c := NewContainer(marks.Rect{})
	p := c.NewPlane().(*Plane)
	marks.ApplyBox(p, marks.Rect{Top: 3, Left: 4, Width: 50, Height: 50})

	s := p.NewSurface()
	s.AddClass("hl")
	s.AddClass("hl")
	s.Append(marks.FillRect{X: 1, Y: 2, Width: 3, Height: 4})

	layers := p.Layers()
	if len(layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(layers))
	}
	l := layers[0]
	if l.OriginX != 4 || l.OriginY != 3 {
		t.Errorf("origin = (%g, %g), want (4, 3)", l.OriginX, l.OriginY)
	}
	if !l.HasClass("hl") || len(l.Classes) != 1 {
		t.Errorf("classes = %v", l.Classes)
	}
	if len(l.Primitives) != 1 {
		t.Errorf("primitives = %v", l.Primitives)
	}
}

func TestRange(t *testing.T) {
	in := []marks.Rect{{Top: 1, Left: 2, Width: 3, Height: 4}}
	r := NewRange(in...)
	in[0].Top = 99
	r.Scroll(10, -1)

	got := r.ClientRects()
	want := marks.Rect{Top: 0, Left: 12, Width: 3, Height: 4}
	if len(got) != 1 || got[0] != want {
		t.Errorf("ClientRects() = %v, want [%v]", got, want)
	}
	got[0].Top = 50
	if r.ClientRects()[0].Top != 0 {
		t.Error("ClientRects() exposes internal storage")
	}
}

func TestSurfaceClasses(t *testing.T) {
	s := &Surface{}
	s.AddClass("a")
	s.AddClass("b")
	s.AddClass("a")
	if !slices.Equal(s.Classes(), []string{"a", "b"}) {
		t.Errorf("Classes() = %v", s.Classes())
	}
	s.RemoveClass("a")
	s.RemoveClass("missing")
	if !slices.Equal(s.Classes(), []string{"b"}) {
		t.Errorf("after RemoveClass: %v", s.Classes())
	}
}

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

package marks_test

import (
	"slices"
	"testing"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/scene"
)

func TestNewPane(t *testing.T) {
	container := scene.NewContainer(marks.Rect{Top: 10, Left: 10, Width: 500, Height: 500})
	target := scene.NewElement(marks.Rect{Top: 30, Left: 20, Width: 300, Height: 200})
	target.SetScrollSize(300, 900)

	marks.NewPane(target, container)

	planes := container.Planes()
	if len(planes) != 1 {
		t.Fatalf("container has %d planes, want 1", len(planes))
	}
	p := planes[0]
	if p.HitTestable() {
		t.Error("plane should not be hit-testable")
	}
	want := marks.Rect{Top: 20, Left: 10, Width: 300, Height: 900}
	if p.Box() != want {
		t.Errorf("plane box = %+v, want %+v", p.Box(), want)
	}
}

func TestPaneFollowsTarget(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)
	rng := scene.NewRange(marks.Rect{Top: 40, Left: 10, Width: 30, Height: 10})
	pane.AddMark(marks.NewHighlight(rng))

	// the document scrolls by 25 pixels and the text reflows
	target.SetBox(marks.Rect{Top: -25, Left: 0, Width: 800, Height: 600})
	target.SetScrollSize(800, 2000)
	rng.Scroll(0, -25)
	pane.Render()

	p := container.Planes()[0]
	wantBox := marks.Rect{Top: -25, Left: 0, Width: 800, Height: 2000}
	if p.Box() != wantBox {
		t.Errorf("plane box = %+v, want %+v", p.Box(), wantBox)
	}

	// the highlight stays on the text in the viewport
	rects := pane.Marks()[0].ClientRects()
	want := marks.Rect{Top: 15, Left: 10, Width: 30, Height: 10}
	if len(rects) != 1 || rects[0] != want {
		t.Errorf("ClientRects() = %v, want [%v]", rects, want)
	}
}

func TestAddMark(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	rng := scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10})
	a := marks.NewHighlight(rng)
	b := marks.NewUnderline(rng)
	if got := pane.AddMark(a); got != a {
		t.Error("AddMark did not return its argument")
	}
	pane.AddMark(b)

	if !slices.Equal(pane.Marks(), []*marks.Mark{a, b}) {
		t.Error("marks not kept in insertion order")
	}
	surfaces := container.Planes()[0].Surfaces()
	if len(surfaces) != 2 {
		t.Fatalf("plane has %d surfaces, want 2", len(surfaces))
	}
	// every mark is painted as soon as it is added
	if len(surfaces[0].Children()) != 1 || len(surfaces[1].Children()) != 2 {
		t.Errorf("children: %v, %v", surfaces[0].Children(), surfaces[1].Children())
	}
}

func TestRemoveMark(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)
	rng := scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10})

	a := pane.AddMark(marks.NewHighlight(rng))
	b := pane.AddMark(marks.NewHighlight(rng))
	c := pane.AddMark(marks.NewHighlight(rng))
	sb := container.Planes()[0].Surfaces()[1]

	pane.RemoveMark(b)
	if !slices.Equal(pane.Marks(), []*marks.Mark{a, c}) {
		t.Errorf("marks after removal: %v", pane.Marks())
	}
	if b.Bound() {
		t.Error("removed mark is still bound")
	}
	if !sb.Detached() {
		t.Error("surface of removed mark is still attached")
	}
	if n := len(container.Planes()[0].Surfaces()); n != 2 {
		t.Errorf("plane has %d surfaces, want 2", n)
	}

	// removing again, or removing a foreign mark, does nothing
	pane.RemoveMark(b)
	pane.RemoveMark(marks.NewHighlight(rng))
	if n := len(pane.Marks()); n != 2 {
		t.Errorf("pane has %d marks, want 2", n)
	}
	pane.Render()
}

func TestPaneEventProxy(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	first := pane.AddMark(marks.NewHighlight(scene.NewRange(
		marks.Rect{Top: 0, Left: 0, Width: 100, Height: 10},
		marks.Rect{Top: 10, Left: 0, Width: 40, Height: 10},
	)))
	second := pane.AddMark(marks.NewHighlight(scene.NewRange(
		marks.Rect{Top: 0, Left: 50, Width: 100, Height: 10},
	)))

	var got []marks.Event
	record := func(e marks.Event) { got = append(got, e) }
	for _, s := range container.Planes()[0].Surfaces() {
		s.Listen(record)
	}

	target.Emit(marks.Event{Kind: marks.Click, X: 60, Y: 5})      // both: most recent wins
	target.Emit(marks.Event{Kind: marks.MouseDown, X: 20, Y: 15}) // first, second line
	target.Emit(marks.Event{Kind: marks.MouseUp, X: 60, Y: 15})   // inside first's box, outside its rects
	target.Emit(marks.Event{Kind: marks.MouseMove, X: 20, Y: 5})  // not forwarded

	want := []marks.Event{
		{Kind: marks.Click, X: 60, Y: 5, MarkID: second.ID()},
		{Kind: marks.MouseDown, X: 20, Y: 15, MarkID: first.ID()},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	pane.Close()
	target.Emit(marks.Event{Kind: marks.Click, X: 20, Y: 5})
	if len(got) != 2 {
		t.Errorf("events forwarded after Close: %v", got[2:])
	}
}

func TestPaneEventKinds(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container, marks.WithEventKinds(marks.MouseMove))
	pane.AddMark(marks.NewHighlight(scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10})))

	var n int
	container.Planes()[0].Surfaces()[0].Listen(func(marks.Event) { n++ })
	target.Emit(marks.Event{Kind: marks.Click, X: 5, Y: 5})
	target.Emit(marks.Event{Kind: marks.MouseMove, X: 5, Y: 5})
	if n != 1 {
		t.Errorf("surface received %d events, want 1", n)
	}
}

func TestEventKindString(t *testing.T) {
	for _, k := range marks.AllEvents {
		if s := k.String(); s == "" || s == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if marks.TouchStart.String() != "touchstart" {
		t.Errorf("TouchStart.String() = %q", marks.TouchStart.String())
	}
	if marks.EventKind(99).String() != "unknown" {
		t.Error("out of range kind should be unknown")
	}
}

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

	"github.com/google/uuid"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/scene"
)

// newHost returns a container and target both at the viewport origin, so
// that plane coordinates equal viewport coordinates.
func newHost() (*scene.Container, *scene.Element) {
	box := marks.Rect{Width: 800, Height: 600}
	return scene.NewContainer(box), scene.NewElement(box)
}

// countingSurface counts the styling calls made on a surface.
type countingSurface struct {
	marks.Surface
	data, attrs, classes int
}

func (s *countingSurface) SetData(k, v string)      { s.data++; s.Surface.SetData(k, v) }
func (s *countingSurface) SetAttribute(k, v string) { s.attrs++; s.Surface.SetAttribute(k, v) }
func (s *countingSurface) AddClass(c string)        { s.classes++; s.Surface.AddClass(c) }

// switchSettings lets a test change the settings between renders.
type switchSettings struct {
	current marks.FixedSettings
}

func (s *switchSettings) LineSpacing() (float64, bool) { return s.current.LineSpacing() }
func (s *switchSettings) FontSize() (float64, bool)    { return s.current.FontSize() }

func TestUnboundMarkIsSafe(t *testing.T) {
	rng := scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10})
	for _, m := range []*marks.Mark{
		marks.NewMark(nil, nil),
		marks.NewHighlight(rng),
		marks.NewUnderline(rng),
	} {
		m.Render()
		m.DispatchEvent(marks.Event{Kind: marks.Click})
		if m.Bound() {
			t.Error("fresh mark reports being bound")
		}
		if rects := m.ClientRects(); len(rects) != 0 {
			t.Errorf("unbound mark has client rects %v", rects)
		}
	}
}

func TestMarkWithoutRange(t *testing.T) {
	container, _ := newHost()
	s := container.NewPlane().NewSurface().(*scene.Surface)

	m := marks.NewHighlight(nil)
	m.Bind(s, container)
	m.Render()
	if n := len(s.Children()); n != 0 {
		t.Errorf("mark without range painted %d primitives", n)
	}
	if rects := m.Rects(); len(rects) != 0 {
		t.Errorf("Rects() = %v, want none", rects)
	}
}

func TestBindAppliesStylingOnce(t *testing.T) {
	container, _ := newHost()
	inner := container.NewPlane().NewSurface().(*scene.Surface)
	s := &countingSurface{Surface: inner}

	m := marks.NewHighlight(
		scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10}),
		marks.WithClass("hl"),
		marks.WithData(map[string]string{"epubcfi": "/6/4!/4/2", "note": "x"}),
		marks.WithAttributes(map[string]string{"fill": "yellow"}),
	)
	m.Bind(s, container)
	for range 3 {
		m.Render()
	}

	if s.data != 2 || s.attrs != 1 || s.classes != 1 {
		t.Errorf("styling calls: data=%d attrs=%d classes=%d, want 2 1 1", s.data, s.attrs, s.classes)
	}
	if got := inner.Data()["epubcfi"]; got != "/6/4!/4/2" {
		t.Errorf("data epubcfi = %q", got)
	}
	if got := inner.Attributes()["fill"]; got != "yellow" {
		t.Errorf("attribute fill = %q", got)
	}
	if !slices.Equal(inner.Classes(), []string{"hl"}) {
		t.Errorf("classes = %v", inner.Classes())
	}
}

func TestMarkIdentity(t *testing.T) {
	container, _ := newHost()
	plane := container.NewPlane()

	m := marks.NewHighlight(nil)
	if m.ID() != "" {
		t.Errorf("detached mark has ID %q", m.ID())
	}
	m.Bind(plane.NewSurface(), container)
	id := m.ID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("ID %q is not a UUID: %v", id, err)
	}

	plane.Remove(m.Unbind())
	m.Bind(plane.NewSurface(), container)
	if m.ID() != id {
		t.Errorf("ID changed on rebind from %q to %q", id, m.ID())
	}

	fixed := marks.NewUnderline(nil, marks.WithID("note-7"))
	fixed.Bind(plane.NewSurface(), container)
	if fixed.ID() != "note-7" {
		t.Errorf("ID = %q, want note-7", fixed.ID())
	}
}

func TestUnbind(t *testing.T) {
	container, _ := newHost()
	s := container.NewPlane().NewSurface().(*scene.Surface)
	var events []marks.Event
	s.Listen(func(e marks.Event) { events = append(events, e) })

	rng := scene.NewRange(marks.Rect{Top: 0, Left: 0, Width: 10, Height: 10})
	m := marks.NewHighlight(rng)
	m.Bind(s, container)
	m.Render()
	m.DispatchEvent(marks.Event{Kind: marks.Click})

	if got := m.Unbind(); got != marks.Surface(s) {
		t.Errorf("Unbind returned %v, want the bound surface", got)
	}
	if m.Unbind() != nil {
		t.Error("second Unbind should return nil")
	}

	rng.Set(marks.Rect{Top: 50, Left: 0, Width: 10, Height: 10})
	m.Render()
	m.DispatchEvent(marks.Event{Kind: marks.Click})

	if s.Appends() != 1 {
		t.Errorf("surface was painted %d times, want 1", s.Appends())
	}
	if len(events) != 1 {
		t.Errorf("surface received %d events, want 1", len(events))
	}
}

func TestHighlightCoordinates(t *testing.T) {
	container := scene.NewContainer(marks.Rect{Top: 100, Left: 50, Width: 800, Height: 600})
	target := scene.NewElement(marks.Rect{Top: 120, Left: 70, Width: 400, Height: 300})
	pane := marks.NewPane(target, container)

	r := marks.Rect{Top: 130, Left: 90, Width: 40, Height: 12}
	m := pane.AddMark(marks.NewHighlight(scene.NewRange(r)))

	s := container.Planes()[0].Surfaces()[0]
	got := s.Children()
	// The empty surface sits at the plane origin (120, 70) in the viewport,
	// so x = 90 - 70 + 50 and y = 130 - 120 + 100.
	want := []marks.Primitive{marks.FillRect{X: 70, Y: 110, Width: 40, Height: 12}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	rects := m.ClientRects()
	wantRect := marks.Rect{Top: 230, Left: 140, Width: 40, Height: 12}
	if len(rects) != 1 || rects[0] != wantRect {
		t.Errorf("ClientRects() = %v, want [%v]", rects, wantRect)
	}
	if m.BoundingClientRect() != wantRect {
		t.Errorf("BoundingClientRect() = %v, want %v", m.BoundingClientRect(), wantRect)
	}
}

func TestHighlightFiltersArtifacts(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	line1 := marks.Rect{Top: 0, Left: 0, Width: 100, Height: 10}
	wide := marks.Rect{Top: 0, Left: -5, Width: 120, Height: 10}
	line2 := marks.Rect{Top: 10, Left: 0, Width: 60, Height: 10}
	rng := scene.NewRange(line2, wide, line1, line1, line2)
	pane.AddMark(marks.NewHighlight(rng))

	got := container.Planes()[0].Surfaces()[0].Children()
	want := []marks.Primitive{
		marks.FillRect{X: 0, Y: 0, Width: 100, Height: 10},
		marks.FillRect{X: 0, Y: 10, Width: 60, Height: 10},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHighlightLineHeight(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	settings := &switchSettings{current: marks.FixedSettings{Spacing: 1.5, Size: 16}}
	rng := scene.NewRange(marks.Rect{Top: 100, Left: 10, Width: 50, Height: 20})
	m := pane.AddMark(marks.NewHighlight(rng, marks.WithSettings(settings)))
	s := container.Planes()[0].Surfaces()[0]

	// height 24, centred on the original box: 100 - (24-20)/2
	want := marks.FillRect{X: 10, Y: 98, Width: 50, Height: 24}
	if got := s.Children(); len(got) != 1 || got[0] != want {
		t.Errorf("got %v, want [%v]", got, want)
	}

	// settings are read again on every render
	settings.current = marks.FixedSettings{Size: 16}
	m.Render()
	want = marks.FillRect{X: 10, Y: 100, Width: 50, Height: 20}
	if got := s.Children(); len(got) != 1 || got[0] != want {
		t.Errorf("without line spacing: got %v, want [%v]", got, want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)
	rng := scene.NewRange(
		marks.Rect{Top: 0, Left: 0, Width: 100, Height: 10},
		marks.Rect{Top: 10, Left: 0, Width: 60, Height: 10},
	)
	pane.AddMark(marks.NewHighlight(rng))
	pane.AddMark(marks.NewUnderline(rng))

	before := container.Planes()[0].Layers()
	for range 3 {
		pane.Render()
	}
	after := container.Planes()[0].Layers()

	if len(before) != len(after) {
		t.Fatalf("layer count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if !slices.Equal(before[i].Primitives, after[i].Primitives) {
			t.Errorf("layer %d changed:\n%v\n%v", i, before[i].Primitives, after[i].Primitives)
		}
	}
	for i, s := range container.Planes()[0].Surfaces() {
		if s.Appends() != 4 {
			t.Errorf("surface %d: %d appends for 4 renders", i, s.Appends())
		}
	}
}

func TestUnderlinePrimitives(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	a := marks.Rect{Top: 0, Left: 0, Width: 100, Height: 10}
	b := marks.Rect{Top: 12, Left: 0, Width: 40, Height: 10}
	settings := marks.FixedSettings{Spacing: 2, Size: 20}
	pane.AddMark(marks.NewUnderline(scene.NewRange(a, b, a), marks.WithSettings(settings)))

	got := container.Planes()[0].Surfaces()[0].Children()
	if len(got) != 4 {
		t.Fatalf("got %d primitives, want 4: %v", len(got), got)
	}
	for i, r := range []marks.Rect{a, b} {
		box, ok := got[2*i].(marks.BorderRect)
		if !ok {
			t.Fatalf("primitive %d is %T, want BorderRect", 2*i, got[2*i])
		}
		if box.Bounds() != r {
			t.Errorf("border %d = %v, want %v", i, box.Bounds(), r)
		}

		line, ok := got[2*i+1].(marks.Line)
		if !ok {
			t.Fatalf("primitive %d is %T, want Line", 2*i+1, got[2*i+1])
		}
		want := marks.Line{
			X1: r.Left, Y1: r.Bottom() - 1,
			X2: r.Right(), Y2: r.Bottom() - 1,
			Width: 1,
			Cap:   graphics.LineCapSquare,
			Color: marks.DefaultUnderlineColor,
		}
		if line != want {
			t.Errorf("line %d = %+v, want %+v", i, line, want)
		}
	}
}

func TestUnderlineKeepsArtifacts(t *testing.T) {
	container, target := newHost()
	pane := marks.NewPane(target, container)

	a := marks.Rect{Top: 0, Left: 0, Width: 100, Height: 10}
	wide := marks.Rect{Top: 0, Left: -5, Width: 120, Height: 10}
	pane.AddMark(marks.NewMark(marks.Underline{Color: "red"}, scene.NewRange(a, wide)))

	got := container.Planes()[0].Surfaces()[0].Children()
	if len(got) != 4 {
		t.Fatalf("got %d primitives, want 4", len(got))
	}
	if line := got[1].(marks.Line); line.Color != "red" {
		t.Errorf("line colour %q, want red", line.Color)
	}
}

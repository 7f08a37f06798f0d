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

// Package testcases defines overlay scenarios shared by the tests of
// several packages and by the reference image generator.
package testcases

import (
	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/scene"
)

// TestCase is a single overlay scenario: one mark over a text range which
// reports the given raw client rectangles.
type TestCase struct {
	Name     string              // lowercase a-z and _ only
	Rects    []marks.Rect        // raw client rectangles of the range
	Policy   marks.Policy        // Highlight or Underline
	Settings marks.FixedSettings // line spacing and font size, zero for none
	Width    int                 // canvas width in pixels
	Height   int                 // canvas height in pixels
	Scroll   float64             // how far the target is scrolled up
	Want     int                 // expected number of primitives
}

// Setup builds the scenario in an in-memory scene. The container covers
// the canvas, the target fills the container and is scrolled up by Scroll.
func (tc TestCase) Setup() (*scene.Container, *marks.Pane) {
	w, h := float64(tc.Width), float64(tc.Height)
	container := scene.NewContainer(marks.Rect{Width: w, Height: h})
	target := scene.NewElement(marks.Rect{Top: -tc.Scroll, Width: w, Height: h + tc.Scroll})
	target.SetScrollSize(w, h+tc.Scroll)

	pane := marks.NewPane(target, container)
	rng := scene.NewRange(tc.Rects...)
	pane.AddMark(marks.NewMark(tc.Policy, rng, marks.WithSettings(tc.Settings), marks.WithClass(tc.class())))
	return container, pane
}

// Layers renders the scenario and returns the painted layers.
func (tc TestCase) Layers() []marks.Layer {
	container, _ := tc.Setup()
	return container.Planes()[0].Layers()
}

func (tc TestCase) class() string {
	switch tc.Policy.(type) {
	case marks.Underline:
		return "underline"
	default:
		return "highlight"
	}
}

// line returns the rectangle of a line fragment.
func line(top, left, width, height float64) marks.Rect {
	return marks.Rect{Top: top, Left: left, Width: width, Height: height}
}

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

package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/scene"
)

// DefaultHighlight is the background of highlighted cells in layers
// without a class listed in [Screen.Classes].
const DefaultHighlight = tcell.ColorYellow

// Screen is a pane container covering a whole terminal screen.
//
// Subscribers of the embedded container receive the events produced by
// [Screen.HandleEvent] in screen coordinates; attached grids receive them
// relative to their content box.
type Screen struct {
	*scene.Container

	// Highlight is the background of highlighted cells.
	Highlight tcell.Color

	// Classes maps layer classes to highlight backgrounds.
	Classes map[string]tcell.Color

	screen tcell.Screen
	grids  []*Grid

	down         bool
	downX, downY int
}

// NewScreen returns a container for s. The screen must be initialised.
func NewScreen(s tcell.Screen) *Screen {
	res := &Screen{
		Container: scene.NewContainer(marks.Rect{}),
		Highlight: DefaultHighlight,
		screen:    s,
	}
	res.resize()
	return res
}

func (s *Screen) resize() {
	w, h := s.screen.Size()
	s.SetBox(marks.Rect{Width: float64(w), Height: float64(h)})
	s.SetScrollSize(float64(w), float64(h))
}

// Attach adds g to the grids which are drawn by [Screen.Draw] and which
// receive mouse events.
func (s *Screen) Attach(g *Grid) {
	s.grids = append(s.grids, g)
}

// Draw draws the attached grids, paints the overlay planes on top and
// shows the result.
func (s *Screen) Draw() {
	s.screen.Clear()
	for _, g := range s.grids {
		g.Draw(s.screen)
	}
	for _, p := range s.Planes() {
		for _, l := range p.Layers() {
			s.paint(l)
		}
	}
	s.screen.Show()
}

// classColor returns the colour for the first class of l listed in
// s.Classes.
func (s *Screen) classColor(l marks.Layer) (tcell.Color, bool) {
	for _, c := range l.Classes {
		if col, ok := s.Classes[c]; ok {
			return col, true
		}
	}
	return s.Highlight, false
}

// paint applies the primitives of l to the cells below them. A cell is
// painted if its centre is covered. Underlined cells take the text colour
// of the layer class, if there is one.
func (s *Screen) paint(l marks.Layer) {
	col, isClass := s.classColor(l)
	for _, prim := range l.Primitives {
		switch prim := prim.(type) {
		case marks.FillRect:
			box := prim.Bounds().Translate(l.OriginX, l.OriginY)
			s.restyle(box, func(st tcell.Style) tcell.Style {
				return st.Background(col)
			})
		case marks.Line:
			// a one cell high band around the line
			box := prim.Bounds().Translate(l.OriginX, l.OriginY)
			box.Top = math.Floor((prim.Y1+prim.Y2)/2+l.OriginY) + 0.25
			box.Height = 0.5
			s.restyle(box, func(st tcell.Style) tcell.Style {
				st = st.Underline(true)
				if isClass {
					st = st.Foreground(col)
				}
				return st
			})
		}
	}
}

// restyle changes the style of all screen cells with their centre in box.
func (s *Screen) restyle(box marks.Rect, change func(tcell.Style) tcell.Style) {
	w, h := s.screen.Size()
	y0 := max(int(math.Floor(box.Top-0.5)), 0)
	y1 := min(int(math.Ceil(box.Bottom())), h)
	x0 := max(int(math.Floor(box.Left-0.5)), 0)
	x1 := min(int(math.Ceil(box.Right())), w)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !box.Contains(float64(x)+0.5, float64(y)+0.5) {
				continue
			}
			r, comb, st, cw := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y, r, comb, change(st))
			if cw > 1 {
				x += cw - 1 // the style of a wide rune covers both cells
			}
		}
	}
}

// HandleEvent processes a tcell event and reports whether the screen
// needs to be redrawn.
//
// Pressing the primary button gives a [marks.MouseDown] event, releasing
// it a [marks.MouseUp] event, followed by [marks.Click] if the pointer is
// still in the cell where it was pressed. Other pointer motion gives
// [marks.MouseMove] events.
func (s *Screen) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.resize()
		s.screen.Sync()
		return true
	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !s.down:
			s.down, s.downX, s.downY = true, x, y
			s.dispatch(marks.MouseDown, x, y)
		case !pressed && s.down:
			s.down = false
			s.dispatch(marks.MouseUp, x, y)
			if x == s.downX && y == s.downY {
				s.dispatch(marks.Click, x, y)
			}
		default:
			s.dispatch(marks.MouseMove, x, y)
		}
		return false
	}
	return false
}

// dispatch delivers an event to the subscribers of s and to the grid
// under the pointer.
func (s *Screen) dispatch(kind marks.EventKind, x, y int) {
	s.Emit(marks.Event{Kind: kind, X: float64(x) + 0.5, Y: float64(y) + 0.5})
	for i := len(s.grids) - 1; i >= 0; i-- {
		if g := s.grids[i]; g.visible(x, y) {
			g.emit(kind, x, y)
			return
		}
	}
}

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

// Package term shows overlay panes on a terminal.
//
// A [Grid] lays out text in character cells and serves as the target
// element of a pane. A [Screen] wraps a tcell screen as the pane
// container; it paints highlights as cell backgrounds and underlines as
// the underline attribute, and turns tcell mouse events into pane events.
// One cell is one unit in all coordinates.
package term

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/width"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/scene"
)

// Grid is a scrollable block of wrapped text at a fixed position on the
// screen.
type Grid struct {
	// Style is used for drawing the text.
	Style tcell.Style

	el *scene.Element

	x, y       int // screen position of the visible area
	cols, rows int // size of the visible area
	scroll     int // number of rows scrolled out at the top

	text  []rune
	pos   []cell // one per rune
	lines int
}

// cell is the layout position of one rune. Newlines have width 0.
type cell struct {
	row, col, width int
}

// NewGrid returns an empty grid with its visible area at column x and
// row y of the screen.
func NewGrid(x, y, cols, rows int) *Grid {
	g := &Grid{
		Style: tcell.StyleDefault,
		el:    scene.NewElement(marks.Rect{}),
		x:     x,
		y:     y,
		cols:  max(cols, 1),
		rows:  max(rows, 1),
	}
	g.update()
	return g
}

// SetText replaces the content of g. Lines are wrapped at the grid width;
// East Asian wide and fullwidth runes take two cells and are never split
// across lines.
func (g *Grid) SetText(s string) {
	g.text = []rune(s)
	g.pos = g.pos[:0]

	row, col := 0, 0
	for _, r := range g.text {
		if r == '\n' {
			g.pos = append(g.pos, cell{row: row, col: col})
			row++
			col = 0
			continue
		}
		w := runeWidth(r)
		if col+w > g.cols && col > 0 {
			row++
			col = 0
		}
		g.pos = append(g.pos, cell{row: row, col: col, width: w})
		col += w
	}
	g.lines = 0
	if len(g.text) > 0 {
		g.lines = row + 1
	}
	g.scroll = min(g.scroll, g.maxScroll())
	g.update()
}

// Text returns the content of g.
func (g *Grid) Text() string {
	return string(g.text)
}

// Lines returns the number of rows of the laid out text.
func (g *Grid) Lines() int {
	return g.lines
}

// Scroll moves the content up by n rows, or down if n is negative. The
// offset stays between zero and the last full page.
func (g *Grid) Scroll(n int) {
	g.scroll = max(0, min(g.scroll+n, g.maxScroll()))
	g.update()
}

// ScrollOffset returns the number of rows scrolled out at the top.
func (g *Grid) ScrollOffset() int {
	return g.scroll
}

func (g *Grid) maxScroll() int {
	return max(0, g.lines-g.rows)
}

// update recomputes the content box after layout or scroll changes.
func (g *Grid) update() {
	g.el.SetBox(marks.Rect{
		Top:    float64(g.y - g.scroll),
		Left:   float64(g.x),
		Width:  float64(g.cols),
		Height: float64(max(g.lines, g.rows)),
	})
	g.el.SetScrollSize(float64(g.cols), float64(max(g.lines, g.rows)))
}

// BoundingClientRect returns the box of the whole content, which starts
// above the visible area when g is scrolled.
func (g *Grid) BoundingClientRect() marks.Rect { return g.el.BoundingClientRect() }
func (g *Grid) ScrollWidth() float64           { return g.el.ScrollWidth() }
func (g *Grid) ScrollHeight() float64          { return g.el.ScrollHeight() }

// Subscribe implements [marks.EventSource]. Event coordinates are relative
// to the content box.
func (g *Grid) Subscribe(kinds []marks.EventKind, fn func(marks.Event)) func() {
	return g.el.Subscribe(kinds, fn)
}

// visible reports whether the screen cell (x, y) lies in the visible area.
func (g *Grid) visible(x, y int) bool {
	return x >= g.x && x < g.x+g.cols && y >= g.y && y < g.y+g.rows
}

// emit delivers an event at the screen cell (x, y) to the subscribers of g.
func (g *Grid) emit(kind marks.EventKind, x, y int) {
	box := g.el.BoundingClientRect()
	g.el.Emit(marks.Event{
		Kind: kind,
		X:    float64(x) + 0.5 - box.Left,
		Y:    float64(y) + 0.5 - box.Top,
	})
}

// Draw writes the visible part of the text to s.
func (g *Grid) Draw(s tcell.Screen) {
	for row := range g.rows {
		for col := range g.cols {
			s.SetContent(g.x+col, g.y+row, ' ', nil, g.Style)
		}
	}
	for i, r := range g.text {
		c := g.pos[i]
		row := c.row - g.scroll
		if c.width == 0 || row < 0 || row >= g.rows {
			continue
		}
		s.SetContent(g.x+c.col, g.y+row, r, nil, g.Style)
	}
}

// Range returns the text range of the runes with index start to end-1.
func (g *Grid) Range(start, end int) *Range {
	return &Range{g: g, start: start, end: end}
}

// Range is a range of runes in a [Grid]. It follows scrolling, but not
// changes of the text.
type Range struct {
	g          *Grid
	start, end int
}

// ClientRects implements [marks.TextRange]. There is one rectangle per
// row, including rows which are scrolled out of view.
func (r *Range) ClientRects() []marks.Rect {
	g := r.g
	box := g.el.BoundingClientRect()

	var res []marks.Rect
	lastRow := -1
	for i := max(r.start, 0); i < min(r.end, len(g.pos)); i++ {
		c := g.pos[i]
		if c.width == 0 {
			continue
		}
		if c.row == lastRow {
			last := &res[len(res)-1]
			last.Width = box.Left + float64(c.col+c.width) - last.Left
			continue
		}
		res = append(res, marks.Rect{
			Top:    box.Top + float64(c.row),
			Left:   box.Left + float64(c.col),
			Width:  float64(c.width),
			Height: 1,
		})
		lastRow = c.row
	}
	return res
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

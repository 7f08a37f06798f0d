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

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/term"
)

// DemoCmd shows a text with a highlight and an underline. Clicking a mark
// toggles its class, the arrow keys scroll, q or Escape quits.
type DemoCmd struct {
	Text string `name:"text" help:"Text to show instead of the built-in sample"`
	Word string `name:"word" default:"overlay" help:"Word to underline wherever it occurs"`
}

const sampleText = `An overlay pane is pinned to a target element. ` +
	`Each mark on the pane turns the client rectangles of a text range ` +
	`into paint primitives: highlights fill one box per line, underlines ` +
	`draw a thin line at the bottom of every box.

Scroll with the arrow keys, click a mark to toggle its colour.`

func (c *DemoCmd) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnableMouse()

	text := c.Text
	if text == "" {
		text = sampleText
	}

	w, h := s.Size()
	screen := term.NewScreen(s)
	screen.Classes = map[string]tcell.Color{"active": tcell.ColorAqua}
	g := term.NewGrid(2, 1, max(w-4, 10), max(h-3, 3))
	g.SetText(text)
	screen.Attach(g)

	pane := marks.NewPane(g, screen)
	defer pane.Close()

	first := strings.IndexAny(text, ".\n")
	if first < 0 {
		first = len(text)
	}
	pane.AddMark(marks.NewHighlight(g.Range(0, len([]rune(text[:first])))))
	for _, start := range wordStarts(text, c.Word) {
		pane.AddMark(marks.NewUnderline(g.Range(start, start+len([]rune(c.Word)))))
	}

	status := ""
	for i, m := range pane.Marks() {
		surface := screen.Planes()[0].Surfaces()[i]
		surface.Listen(func(e marks.Event) {
			if e.Kind != marks.Click {
				return
			}
			if slices.Contains(surface.Classes(), "active") {
				surface.RemoveClass("active")
			} else {
				surface.AddClass("active")
			}
			status = fmt.Sprintf("clicked mark %s", m.ID())
		})
	}

	for {
		screen.Draw()
		drawStatus(s, status)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyUp:
				g.Scroll(-1)
			case ev.Key() == tcell.KeyDown:
				g.Scroll(1)
			}
			pane.Render()
		case *tcell.EventResize:
			screen.HandleEvent(ev)
			pane.Render()
		default:
			screen.HandleEvent(ev)
		}
	}
}

func drawStatus(s tcell.Screen, msg string) {
	_, h := s.Size()
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(msg) {
		s.SetContent(i, h-1, r, nil, style)
	}
}

// wordStarts returns the rune indices of all occurrences of word in text.
func wordStarts(text, word string) []int {
	if word == "" {
		return nil
	}
	runes := []rune(text)
	w := []rune(word)
	var res []int
	for i := 0; i+len(w) <= len(runes); i++ {
		if string(runes[i:i+len(w)]) == word {
			res = append(res, i)
		}
	}
	return res
}

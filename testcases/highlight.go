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

package testcases

import "seehuhn.de/go/marks"

var highlightCases = []TestCase{
	{
		Name:   "single_line",
		Rects:  []marks.Rect{line(20, 10, 44, 12)},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   1,
	},
	{
		Name: "three_lines",
		Rects: []marks.Rect{
			line(10, 20, 40, 12),
			line(26, 4, 56, 12),
			line(42, 4, 30, 12),
		},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   3,
	},
	{
		Name:   "fractional",
		Rects:  []marks.Rect{line(20.5, 10.25, 43.5, 11.75)},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   1,
	},
	{
		Name: "line_height",
		Rects: []marks.Rect{
			line(10, 8, 48, 10),
			line(30, 8, 30, 10),
		},
		Policy:   marks.Highlight{},
		Settings: marks.FixedSettings{Spacing: 1.5, Size: 10},
		Width:    64,
		Height:   64,
		Want:     2,
	},
}

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

var underlineCases = []TestCase{
	{
		Name:   "single_line",
		Rects:  []marks.Rect{line(20, 10, 44, 12)},
		Policy: marks.Underline{},
		Width:  64,
		Height: 64,
		Want:   2,
	},
	{
		Name: "two_lines",
		Rects: []marks.Rect{
			line(10, 20, 40, 12),
			line(26, 4, 40, 12),
			line(10, 20, 40, 12),
		},
		Policy: marks.Underline{},
		Width:  64,
		Height: 64,
		Want:   4,
	},
	{
		Name: "coloured",
		Rects: []marks.Rect{
			line(30, 8, 48, 10),
		},
		Policy: marks.Underline{Color: "red"},
		Width:  64,
		Height: 64,
		Want:   2,
	},
}

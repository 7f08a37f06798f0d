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

// artifactCases contain the extra rectangles reported for nested inline
// markup: exact duplicates, enclosing spans and line boxes.
var artifactCases = []TestCase{
	{
		Name: "duplicates",
		Rects: []marks.Rect{
			line(20, 10, 44, 12),
			line(20, 10, 44, 12),
			line(20, 10, 44, 12),
		},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   1,
	},
	{
		Name: "enclosing_span",
		Rects: []marks.Rect{
			line(20, 6, 52, 12),
			line(20, 10, 44, 12),
		},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   1,
	},
	{
		Name: "line_box",
		Rects: []marks.Rect{
			line(16, 10, 44, 24),
			line(20, 10, 44, 12),
		},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   2, // the taller box starts higher, so it sorts first
	},
	{
		Name: "line_box_same_top",
		Rects: []marks.Rect{
			line(20, 10, 44, 24),
			line(20, 10, 44, 12),
		},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Want:   1,
	},
	{
		Name: "underline_keeps_span",
		Rects: []marks.Rect{
			line(20, 6, 52, 12),
			line(20, 10, 44, 12),
		},
		Policy: marks.Underline{},
		Width:  64,
		Height: 64,
		Want:   4,
	},
}

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

// scrollCases have the target scrolled up, so that the overlay plane
// starts above the canvas.
var scrollCases = []TestCase{
	{
		Name:   "highlight",
		Rects:  []marks.Rect{line(20, 10, 44, 12)},
		Policy: marks.Highlight{},
		Width:  64,
		Height: 64,
		Scroll: 100,
		Want:   1,
	},
	{
		Name:   "underline",
		Rects:  []marks.Rect{line(40, 10, 44, 12)},
		Policy: marks.Underline{},
		Width:  64,
		Height: 64,
		Scroll: 30,
		Want:   2,
	},
}

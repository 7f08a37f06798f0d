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

// Package marks positions highlight and underline overlays over text ranges.
//
// A text range reports one client rectangle per visual line fragment, often
// with duplicates from nested inline boxes and with artifacts from line boxes
// that enclose glyph boxes. This package turns those rectangles into a small
// set of paint primitives and places them on an overlay plane which follows
// its target element as it scrolls and resizes.
//
// The host supplies the surfaces and the text ranges through the interfaces
// in this package. The scene sub-package contains an in-memory host, the
// term sub-package a terminal host.
//
// A [Pane] and its marks are not safe for concurrent use.
package marks

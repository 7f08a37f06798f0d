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

package marks

import "slices"

// Layer is a snapshot of the paint output of one mark surface, used by
// exporters. Primitives are in plane coordinates; adding OriginX and
// OriginY gives coordinates relative to the container.
type Layer struct {
	OriginX, OriginY float64
	Classes          []string
	Primitives       []Primitive
}

// HasClass reports whether c is one of the classes of l.
func (l Layer) HasClass(c string) bool {
	return slices.Contains(l.Classes, c)
}

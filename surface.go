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

// TextRange is a span of document content. The host owns it; this package
// only asks for the rectangles it currently occupies, one or more per visual
// line fragment, in viewport coordinates.
type TextRange interface {
	ClientRects() []Rect
}

// Surface is the paint surface owned by one mark. It is a child of the
// overlay plane.
type Surface interface {
	Boxed

	// Clear removes all painted children.
	Clear()

	// Append adds children in a single mutation.
	Append(children ...Primitive)

	// ChildRects returns the viewport-relative box of every child,
	// in paint order.
	ChildRects() []Rect

	SetData(key, value string)
	SetAttribute(key, value string)
	AddClass(class string)

	// DispatchEvent delivers e to the listeners of the surface.
	DispatchEvent(e Event)
}

// Plane is the overlay surface of a [Pane]. It is positioned absolutely
// inside its container.
type Plane interface {
	Positioner

	// SetHitTestable controls whether the plane itself receives pointer
	// events. Panes turn this off and forward events to marks instead.
	SetHitTestable(on bool)

	// NewSurface creates a child surface attached to the plane.
	NewSurface() Surface

	// Remove detaches s from the plane.
	Remove(s Surface)
}

// Container hosts overlay planes.
type Container interface {
	Boxed

	// NewPlane creates an empty plane attached to the container.
	NewPlane() Plane
}

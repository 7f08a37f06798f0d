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

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Mark is one overlay annotation bound to a text range.
//
// A new mark is detached. [Pane.AddMark] binds it to a surface, after which
// every call to [Mark.Render] replaces the painted output with a fresh one
// computed from the current range geometry. A mark paints nothing while it
// is unbound.
type Mark struct {
	policy   Policy
	rng      TextRange
	class    string
	data     map[string]string
	attrs    map[string]string
	settings Settings

	id        string
	surface   Surface
	container Boxed
}

// MarkOption configures a Mark during creation.
type MarkOption func(*Mark)

// WithClass sets a class which is added to the surface on bind.
func WithClass(class string) MarkOption {
	return func(m *Mark) {
		m.class = class
	}
}

// WithData sets data entries which are copied to the surface on bind.
func WithData(data map[string]string) MarkOption {
	return func(m *Mark) {
		m.data = maps.Clone(data)
	}
}

// WithAttributes sets attributes which are copied to the surface on bind.
func WithAttributes(attrs map[string]string) MarkOption {
	return func(m *Mark) {
		m.attrs = maps.Clone(attrs)
	}
}

// WithSettings sets the source of the line spacing and font size used to
// normalise highlight heights.
func WithSettings(s Settings) MarkOption {
	return func(m *Mark) {
		m.settings = s
	}
}

// WithID sets the identifier of the mark. Without this option, an
// identifier is generated when the mark is first bound.
func WithID(id string) MarkOption {
	return func(m *Mark) {
		m.id = id
	}
}

// NewMark returns a detached mark which paints rng using policy.
// Both may be nil; such a mark never paints anything.
func NewMark(policy Policy, rng TextRange, opts ...MarkOption) *Mark {
	m := &Mark{
		policy: policy,
		rng:    rng,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewHighlight returns a detached mark which fills the lines of rng.
func NewHighlight(rng TextRange, opts ...MarkOption) *Mark {
	return NewMark(Highlight{}, rng, opts...)
}

// NewUnderline returns a detached mark which underlines the lines of rng.
func NewUnderline(rng TextRange, opts ...MarkOption) *Mark {
	return NewMark(Underline{}, rng, opts...)
}

// ID returns the identifier of the mark, or "" if it has never been bound
// and no ID was given.
func (m *Mark) ID() string {
	return m.id
}

// Range returns the text range of the mark.
func (m *Mark) Range() TextRange {
	return m.rng
}

// Policy returns the render policy of the mark.
func (m *Mark) Policy() Policy {
	return m.policy
}

// Class returns the class set with [WithClass].
func (m *Mark) Class() string {
	return m.class
}

// Bound reports whether the mark currently has a surface.
func (m *Mark) Bound() bool {
	return m.surface != nil
}

// Bind attaches the mark to surface, painting in the coordinates of
// container. Data, attributes and class are applied to the surface here,
// once; rendering does not touch them.
func (m *Mark) Bind(surface Surface, container Boxed) {
	m.surface = surface
	m.container = container
	if m.id == "" {
		m.id = uuid.NewString()
	}

	for _, k := range slices.Sorted(maps.Keys(m.data)) {
		surface.SetData(k, m.data[k])
	}
	for _, k := range slices.Sorted(maps.Keys(m.attrs)) {
		surface.SetAttribute(k, m.attrs[k])
	}
	if m.class != "" {
		surface.AddClass(m.class)
	}
}

// Unbind releases the surface and returns it. The caller is responsible for
// detaching it. Unbind on an unbound mark returns nil.
func (m *Mark) Unbind() Surface {
	s := m.surface
	m.surface = nil
	m.container = nil
	return s
}

// Render replaces the painted output of the mark. It does nothing if the
// mark is unbound or has no policy.
func (m *Mark) Render() {
	if m.surface == nil || m.policy == nil {
		return
	}

	m.surface.Clear()
	offset := m.surface.BoundingClientRect()
	container := m.container.BoundingClientRect()
	prims := m.policy.paint(m.Rects(), paintContext{
		offset:    offset,
		container: container,
		settings:  m.settings,
	})
	if len(prims) > 0 {
		m.surface.Append(prims...)
	}
}

// Rects returns the distinct client rectangles of the range, in the order
// the range reports them. An unbound range gives no rectangles.
func (m *Mark) Rects() []Rect {
	if m.rng == nil {
		return nil
	}
	return Dedupe(m.rng.ClientRects())
}

// DispatchEvent forwards e to the surface. Events sent to an unbound mark
// are dropped.
func (m *Mark) DispatchEvent(e Event) {
	if m.surface == nil {
		return
	}
	m.surface.DispatchEvent(e)
}

// BoundingClientRect returns the box of the surface. The mark must be
// bound; the zero Rect is returned otherwise.
func (m *Mark) BoundingClientRect() Rect {
	if m.surface == nil {
		return Rect{}
	}
	return m.surface.BoundingClientRect()
}

// ClientRects returns the box of every painted child, for hit testing the
// overlay independently of the range geometry. The mark must be bound.
func (m *Mark) ClientRects() []Rect {
	if m.surface == nil {
		return nil
	}
	return m.surface.ChildRects()
}

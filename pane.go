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

// Pane is an overlay plane pinned to a target element. It owns an ordered
// list of marks; insertion order is paint order.
type Pane struct {
	target    Element
	container Container
	plane     Plane
	marks     []*Mark
	cancel    func()
}

// PaneOption configures a Pane during creation.
type PaneOption func(*paneOptions)

type paneOptions struct {
	kinds []EventKind
}

// WithEventKinds sets the event kinds which are forwarded from the target
// to the marks. The default is [PointerEvents]. An empty list disables
// forwarding.
func WithEventKinds(kinds ...EventKind) PaneOption {
	return func(o *paneOptions) {
		o.kinds = kinds
	}
}

// NewPane creates an overlay plane for target inside container and renders
// it once. If target is an [EventSource], pointer events on it are
// forwarded to the mark under the pointer, since the plane itself does not
// receive pointer events.
func NewPane(target Element, container Container, opts ...PaneOption) *Pane {
	o := paneOptions{kinds: PointerEvents}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pane{
		target:    target,
		container: container,
		plane:     container.NewPlane(),
	}
	p.plane.SetHitTestable(false)

	if src, ok := target.(EventSource); ok && len(o.kinds) > 0 {
		p.cancel = ProxyEvents(src, target, o.kinds, func() []*Mark { return p.marks })
	}

	p.Render()
	return p
}

// AddMark binds m to a new surface on the plane, renders it and returns it.
func (p *Pane) AddMark(m *Mark) *Mark {
	s := p.plane.NewSurface()
	m.Bind(s, p.container)
	p.marks = append(p.marks, m)
	m.Render()
	return m
}

// RemoveMark unbinds m and removes its surface from the plane.
// Marks not owned by p are ignored.
func (p *Pane) RemoveMark(m *Mark) {
	idx := slices.Index(p.marks, m)
	if idx < 0 {
		return
	}
	if s := m.Unbind(); s != nil {
		p.plane.Remove(s)
	}
	p.marks = slices.Delete(p.marks, idx, idx+1)
}

// Render moves the plane over the target and re-renders all marks in
// order. Call this whenever the target scrolls, reflows or resizes.
func (p *Pane) Render() {
	ApplyBox(p.plane, BoxRelativeTo(p.target, p.container))
	for _, m := range p.marks {
		m.Render()
	}
}

// Marks returns the marks of p in paint order.
func (p *Pane) Marks() []*Mark {
	return slices.Clone(p.marks)
}

// Close stops forwarding events from the target. The marks stay bound.
func (p *Pane) Close() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

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

// EventKind identifies an interaction event.
type EventKind int

// Supported event kinds.
const (
	KeyDown EventKind = iota
	KeyUp
	KeyPressed
	MouseUp
	MouseDown
	MouseMove
	Click
	TouchEnd
	TouchStart
	TouchMove
)

var eventNames = [...]string{
	KeyDown:    "keydown",
	KeyUp:      "keyup",
	KeyPressed: "keypressed",
	MouseUp:    "mouseup",
	MouseDown:  "mousedown",
	MouseMove:  "mousemove",
	Click:      "click",
	TouchEnd:   "touchend",
	TouchStart: "touchstart",
	TouchMove:  "touchmove",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// AllEvents lists every event kind, in declaration order.
var AllEvents = []EventKind{
	KeyDown, KeyUp, KeyPressed, MouseUp, MouseDown, MouseMove,
	Click, TouchEnd, TouchStart, TouchMove,
}

// PointerEvents are the kinds a [Pane] forwards to its marks by default.
var PointerEvents = []EventKind{MouseUp, MouseDown, Click, TouchStart}

// Event is an interaction event. X and Y are relative to the viewport of
// the element the event was observed on. MarkID is set when the event is
// forwarded to a mark.
type Event struct {
	Kind   EventKind
	X, Y   float64
	MarkID string
}

// EventSource is an element which reports interaction events.
type EventSource interface {
	// Subscribe calls fn for every event of one of the given kinds.
	// The returned function cancels the subscription.
	Subscribe(kinds []EventKind, fn func(Event)) (cancel func())
}

// ProxyEvents forwards events observed on src to the marks returned by
// tracked. Marks are tried from last to first, so that the most recently
// added mark wins, and only the first mark under the pointer receives the
// event. offset is the element whose box the event coordinates are relative
// to.
func ProxyEvents(src EventSource, offset Boxed, kinds []EventKind, tracked func() []*Mark) (cancel func()) {
	return src.Subscribe(kinds, func(e Event) {
		marks := tracked()
		for i := len(marks) - 1; i >= 0; i-- {
			m := marks[i]
			if !m.Bound() || !hit(m, offset, e.X, e.Y) {
				continue
			}
			e.MarkID = m.ID()
			m.DispatchEvent(e)
			return
		}
		Logger().Debug("event hit no mark", "kind", e.Kind, "x", e.X, "y", e.Y)
	})
}

// hit reports whether (x, y) falls inside one of the painted rectangles of
// m. The overall box is checked first.
func hit(m *Mark, offset Boxed, x, y float64) bool {
	o := offset.BoundingClientRect()
	inside := func(r Rect) bool {
		return r.Translate(-o.Left, -o.Top).Contains(x, y)
	}

	if !inside(m.BoundingClientRect()) {
		return false
	}
	for _, r := range m.ClientRects() {
		if inside(r) {
			return true
		}
	}
	return false
}

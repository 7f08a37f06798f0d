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

import "math"

// Settings gives read access to the text settings of the host document.
// Both values are optional. Highlights query them on every render.
type Settings interface {
	// LineSpacing returns the line spacing as a multiple of the font size.
	LineSpacing() (float64, bool)

	// FontSize returns the font size in pixels.
	FontSize() (float64, bool)
}

// FixedSettings is a [Settings] with constant values.
// A zero field counts as absent.
type FixedSettings struct {
	Spacing float64
	Size    float64
}

// LineSpacing implements [Settings].
func (s FixedSettings) LineSpacing() (float64, bool) {
	return s.Spacing, s.Spacing != 0
}

// FontSize implements [Settings].
func (s FixedSettings) FontSize() (float64, bool) {
	return s.Size, s.Size != 0
}

// lineHeight returns fontSize*lineSpacing, if both are present. Zero and NaN
// count as absent.
func lineHeight(s Settings) (float64, bool) {
	if s == nil {
		return 0, false
	}
	spacing, ok := s.LineSpacing()
	if !ok || spacing == 0 || math.IsNaN(spacing) {
		return 0, false
	}
	size, ok := s.FontSize()
	if !ok || size == 0 || math.IsNaN(size) {
		return 0, false
	}
	return size * spacing, true
}

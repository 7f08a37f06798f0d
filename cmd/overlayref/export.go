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

package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/testcases"
)

// ExportCmd writes the test scenarios, together with the primitives they
// paint, so that other implementations can be checked against them.
type ExportCmd struct {
	Out string `name:"out" short:"o" default:"testdata/testcases.json" type:"path" help:"Output file"`
}

type jsonTestCase struct {
	Name        string          `json:"name"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Policy      string          `json:"policy"`
	Color       string          `json:"color,omitempty"`
	LineSpacing float64         `json:"line_spacing,omitempty"`
	FontSize    float64         `json:"font_size,omitempty"`
	Scroll      float64         `json:"scroll,omitempty"`
	Rects       []jsonRect      `json:"rects"`
	Primitives  []jsonPrimitive `json:"primitives"`
}

type jsonRect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// jsonPrimitive is a paint primitive in canvas coordinates.
type jsonPrimitive struct {
	Type   string    `json:"type"`
	Rect   *jsonRect `json:"rect,omitempty"`
	From   []float64 `json:"from,omitempty"`
	To     []float64 `json:"to,omitempty"`
	Width  float64   `json:"width,omitempty"`
	Cap    string    `json:"cap,omitempty"`
	Stroke string    `json:"stroke,omitempty"`
}

func (c *ExportCmd) Run() (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		return err
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Width:       tc.Width,
		Height:      tc.Height,
		LineSpacing: tc.Settings.Spacing,
		FontSize:    tc.Settings.Size,
		Scroll:      tc.Scroll,
	}
	switch p := tc.Policy.(type) {
	case marks.Highlight:
		jtc.Policy = "highlight"
	case marks.Underline:
		jtc.Policy = "underline"
		jtc.Color = p.Color
	}
	for _, r := range tc.Rects {
		jtc.Rects = append(jtc.Rects, rectToJSON(r))
	}

	for _, l := range tc.Layers() {
		for _, prim := range l.Primitives {
			jtc.Primitives = append(jtc.Primitives, primitiveToJSON(prim, l.OriginX, l.OriginY))
		}
	}
	return jtc
}

func rectToJSON(r marks.Rect) jsonRect {
	return jsonRect{Top: r.Top, Left: r.Left, Width: r.Width, Height: r.Height}
}

func primitiveToJSON(prim marks.Primitive, dx, dy float64) jsonPrimitive {
	switch prim := prim.(type) {
	case marks.FillRect:
		r := rectToJSON(prim.Bounds().Translate(dx, dy))
		return jsonPrimitive{Type: "fill", Rect: &r}
	case marks.BorderRect:
		r := rectToJSON(prim.Bounds().Translate(dx, dy))
		return jsonPrimitive{Type: "border", Rect: &r}
	case marks.Line:
		return jsonPrimitive{
			Type:   "line",
			From:   []float64{prim.X1 + dx, prim.Y1 + dy},
			To:     []float64{prim.X2 + dx, prim.Y2 + dy},
			Width:  prim.Width,
			Cap:    prim.Cap.String(),
			Stroke: prim.Color,
		}
	}
	return jsonPrimitive{}
}

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
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/marks"
	"seehuhn.de/go/marks/pdfout"
	"seehuhn.de/go/marks/raster"
	"seehuhn.de/go/marks/testcases"
)

// RenderCmd writes one PNG and one PDF per test scenario.
type RenderCmd struct {
	Out    string `name:"out" short:"o" default:"testdata/reference" type:"path" help:"Output directory"`
	Vector bool   `name:"vector" help:"Paint PNGs with golang.org/x/image/vector instead of the built-in rasteriser"`
	GS     bool   `name:"gs" help:"Also render the PDFs to greyscale PNGs with Ghostscript"`
}

func (c *RenderCmd) Run() error {
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return err
	}

	var paint func(draw.Image, []marks.Layer)
	if c.Vector {
		paint = raster.NewVectorPainter(raster.DefaultTheme()).Paint
	} else {
		paint = raster.NewPainter(raster.DefaultTheme()).Paint
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			layers := tc.Layers()

			img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
			draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
			paint(img, layers)
			if err := writePNG(filepath.Join(c.Out, name+".png"), img); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			pdfPath := filepath.Join(c.Out, name+".pdf")
			err := pdfout.Write(pdfPath, float64(tc.Width), float64(tc.Height), layers, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if c.GS {
				if err := renderPDF(pdfPath, filepath.Join(c.Out, name+"_gs.png")); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	return nil
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func renderPDF(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, the grey value is the coverage
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

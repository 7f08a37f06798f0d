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

// Package pdfout writes overlay layers to single page PDF files.
//
// The output is meant as a reference for the raster painters: rendered
// with an independent PDF renderer, such as Ghostscript, it shows what the
// overlay should look like.
package pdfout

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/marks"
)

// Options sets the grey levels used in the output, from 0 (black) to 1
// (white).
type Options struct {
	Background float64
	Fill       float64
	Stroke     float64
}

// Coverage paints white on black, so that the grey value of each pixel in
// a rendering is the coverage of the overlay.
var Coverage = Options{Background: 0, Fill: 1, Stroke: 1}

// ErrEmptyPage is returned for pages without area.
var ErrEmptyPage = errors.New("pdfout: page width and height must be positive")

// Write stores layers as a PDF page of the given size, in PDF points.
// Layer coordinates have their origin in the top left corner of the page,
// with y pointing down. Unfilled rectangles are not drawn.
// If opt is nil, [Coverage] is used.
func Write(fname string, width, height float64, layers []marks.Layer, opt *Options) error {
	if !(width > 0 && height > 0) {
		return ErrEmptyPage
	}
	if opt == nil {
		opt = &Coverage
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(opt.Background))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; layers assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	page.SetFillColor(color.DeviceGray(opt.Fill))
	page.SetStrokeColor(color.DeviceGray(opt.Stroke))

	count := 0
	for _, l := range layers {
		for _, prim := range l.Primitives {
			switch prim := prim.(type) {
			case marks.FillRect:
				page.Rectangle(prim.X+l.OriginX, prim.Y+l.OriginY, prim.Width, prim.Height)
				page.Fill()
				count++
			case marks.Line:
				page.SetLineWidth(prim.Width)
				page.SetLineCap(prim.Cap)
				page.MoveTo(prim.X1+l.OriginX, prim.Y1+l.OriginY)
				page.LineTo(prim.X2+l.OriginX, prim.Y2+l.OriginY)
				page.Stroke()
				count++
			}
		}
	}
	marks.Logger().Debug("wrote overlay page", "file", fname, "layers", len(layers), "shapes", count)

	return page.Close()
}

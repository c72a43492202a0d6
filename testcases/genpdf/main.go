// seehuhn.de/go/polyclip - boolean operations on simple polygons
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

// Command genpdf renders every test case and boolean operation to a
// single-page PDF under demo/. Result polygons are filled light gray, the
// subject and clip outlines are stroked on top.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyclip"
	"seehuhn.de/go/polyclip/testcases"
)

const demoDir = "demo"

const (
	// pageSize is the PDF page width and height in points.
	pageSize = 360.0

	// pageMargin is the blank border around the drawing in points.
	pageMargin = 24.0
)

func main() {
	if err := os.MkdirAll(demoDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			subject, err := polyclip.New(tc.Subject)
			if err != nil {
				panic(fmt.Errorf("%s_%s: subject: %w", category, tc.Name, err))
			}
			clip, err := polyclip.New(tc.Clip)
			if err != nil {
				panic(fmt.Errorf("%s_%s: clip: %w", category, tc.Name, err))
			}

			for _, op := range testcases.Operations {
				name := category + "_" + tc.Name + "_" + op.String()
				pdfPath := filepath.Join(demoDir, name+".pdf")
				result := apply(op, subject, clip)
				if err := generatePDF(pdfPath, subject, clip, result); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func apply(op testcases.Operation, subject, clip *polyclip.Polygon) []*polyclip.Polygon {
	switch op {
	case testcases.Union:
		return subject.Union(clip)
	case testcases.Intersection:
		return subject.Intersection(clip)
	case testcases.Difference:
		return subject.Difference(clip)
	case testcases.ReverseDifference:
		return subject.ReverseDifference(clip)
	default:
		panic("unknown operation")
	}
}

func generatePDF(pdfPath string, subject, clip *polyclip.Polygon, result []*polyclip.Polygon) error {
	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Map the combined bounding box of both inputs onto the page. The
	// results are subsets of the union of the inputs, so they fit as well.
	bounds := combine(subject.Bounds(), clip.Bounds())
	scale := fitScale(bounds)
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		pageMargin - scale*bounds.LLx,
		pageMargin - scale*bounds.LLy,
	})

	// result polygons, filled
	page.SetFillColor(color.DeviceGray(0.8))
	for _, poly := range result {
		drawPath(page, poly.Path())
	}
	page.Fill()

	// input outlines on top
	page.SetLineWidth(1.5 / scale)
	page.SetStrokeColor(color.DeviceGray(0.2))
	drawPath(page, subject.Path())
	page.Stroke()
	page.SetStrokeColor(color.DeviceGray(0.5))
	drawPath(page, clip.Path())
	page.Stroke()

	return page.Close()
}

func combine(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// fitScale returns the factor that maps the bounding box into the page
// while preserving the aspect ratio.
func fitScale(b rect.Rect) float64 {
	avail := pageSize - 2*pageMargin
	longest := max(b.URx-b.LLx, b.URy-b.LLy)
	if longest <= 0 {
		return 1
	}
	return avail / longest
}

type pathWriter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPath(w pathWriter, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			w.ClosePath()
		}
	}
}

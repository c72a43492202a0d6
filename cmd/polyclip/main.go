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

// Command polyclip applies a boolean operation to two polygons given on
// the command line and prints the result, or renders it to a PDF file.
//
// Polygons are written as semicolon-separated vertices with comma-separated
// coordinates, for example "0,0; 2,0; 2,2; 0,2".
package main

import (
	"fmt"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyclip"
)

// The default polygons are the demo pair from the Greiner-Hormann paper.
const (
	defaultSubject = "1.5,1.25; 7.5,2.5; 4,3; 4.5,6.5"
	defaultClip    = "5,4.5; 3,5.5; 1,4; 1.5,3.5; 0,2; 3,2.25; 2.5,1; 5.5,0"
)

type Clip struct {
	Subject string `short:"s" desc:"Subject polygon A (\"x,y; x,y; ...\")"`
	Clip    string `short:"c" desc:"Clip polygon B (\"x,y; x,y; ...\")"`
	Op      string `default:"difference" desc:"Operation: union, intersection, difference, reversed-diff"`
	Output  string `short:"o" desc:"Render the result to this PDF file instead of printing"`
}

func main() {
	root := argp.NewCmd(&Clip{}, "boolean operations on simple polygons")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Clip) Run() error {
	if cmd.Subject == "" {
		cmd.Subject = defaultSubject
	}
	if cmd.Clip == "" {
		cmd.Clip = defaultClip
	}

	subjectPoints, err := parsePolygon(cmd.Subject)
	if err != nil {
		return fmt.Errorf("subject polygon: %w", err)
	}
	clipPoints, err := parsePolygon(cmd.Clip)
	if err != nil {
		return fmt.Errorf("clip polygon: %w", err)
	}

	subject, err := polyclip.New(subjectPoints)
	if err != nil {
		return fmt.Errorf("subject polygon: %w", err)
	}
	clip, err := polyclip.New(clipPoints)
	if err != nil {
		return fmt.Errorf("clip polygon: %w", err)
	}

	var result []*polyclip.Polygon
	switch cmd.Op {
	case "union":
		result = subject.Union(clip)
	case "intersection":
		result = subject.Intersection(clip)
	case "difference":
		result = subject.Difference(clip)
	case "reversed-diff":
		result = subject.ReverseDifference(clip)
	default:
		return fmt.Errorf("unknown operation %q", cmd.Op)
	}

	if cmd.Output != "" {
		return writePDF(cmd.Output, subject, clip, result)
	}

	for i, poly := range result {
		fmt.Printf("polygon %d (area %g):\n", i+1, poly.Area())
		for _, pt := range poly.Points() {
			fmt.Printf("  %g, %g\n", pt.X, pt.Y)
		}
	}
	return nil
}

const (
	pageSize   = 360.0
	pageMargin = 24.0
)

// writePDF draws the clip result the same way as the genpdf demo command:
// result polygons filled, input outlines stroked on top.
func writePDF(pdfPath string, subject, clip *polyclip.Polygon, result []*polyclip.Polygon) error {
	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	sb, cb := subject.Bounds(), clip.Bounds()
	bounds := rect.Rect{
		LLx: min(sb.LLx, cb.LLx),
		LLy: min(sb.LLy, cb.LLy),
		URx: max(sb.URx, cb.URx),
		URy: max(sb.URy, cb.URy),
	}
	avail := pageSize - 2*pageMargin
	scale := avail / max(bounds.URx-bounds.LLx, bounds.URy-bounds.LLy)
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		pageMargin - scale*bounds.LLx,
		pageMargin - scale*bounds.LLy,
	})

	page.SetFillColor(color.DeviceGray(0.8))
	for _, poly := range result {
		drawPath(page, poly.Path())
	}
	page.Fill()

	page.SetLineWidth(1.5 / scale)
	page.SetStrokeColor(color.DeviceGray(0.2))
	drawPath(page, subject.Path())
	page.Stroke()
	page.SetStrokeColor(color.DeviceGray(0.5))
	drawPath(page, clip.Path())
	page.Stroke()

	return page.Close()
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

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

// Command export rasterises every test case and boolean operation to a
// PNG image under demo/, using the golang.org/x/image/vector rasteriser.
// Result polygons are drawn dark on a white background.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/polyclip"
	"seehuhn.de/go/polyclip/testcases"
)

const demoDir = "demo"

const (
	// imageSize is the output image width and height in pixels.
	imageSize = 256

	// imageMargin is the blank border around the drawing in pixels.
	imageMargin = 16
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
				pngPath := filepath.Join(demoDir, name+".png")
				result := apply(op, subject, clip)
				if err := writePNG(pngPath, subject, clip, result); err != nil {
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

func writePNG(pngPath string, subject, clip *polyclip.Polygon, result []*polyclip.Polygon) error {
	bounds := combine(subject.Bounds(), clip.Bounds())
	scale := fitScale(bounds)

	// device transform: scale into the image and flip the y axis
	toDevice := func(x, y float64) (float32, float32) {
		dx := imageMargin + scale*(x-bounds.LLx)
		dy := imageSize - imageMargin - scale*(y-bounds.LLy)
		return float32(dx), float32(dy)
	}

	r := vector.NewRasterizer(imageSize, imageSize)
	for _, poly := range result {
		for cmd, pts := range poly.Path() {
			switch cmd {
			case path.CmdMoveTo:
				x, y := toDevice(pts[0].X, pts[0].Y)
				r.MoveTo(x, y)
			case path.CmdLineTo:
				x, y := toDevice(pts[0].X, pts[0].Y)
				r.LineTo(x, y)
			case path.CmdClose:
				r.ClosePath()
			}
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	r.Draw(img, img.Bounds(), image.NewUniform(color.Gray{Y: 64}), image.Point{})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func combine(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

// fitScale returns the factor that maps the bounding box into the image
// while preserving the aspect ratio.
func fitScale(b rect.Rect) float64 {
	avail := float64(imageSize - 2*imageMargin)
	longest := max(b.URx-b.LLx, b.URy-b.LLy)
	if longest <= 0 {
		return 1
	}
	return avail / longest
}

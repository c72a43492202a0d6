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

package polyclip

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	// counter-clockwise unit-ish shapes used throughout the tests
	squarePoints = []vec.Vec2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}
	lShapePoints = []vec.Vec2{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
)

func mustNew(t *testing.T, points []vec.Vec2) *Polygon {
	t.Helper()
	p, err := New(points)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestNewTooFewVertices(t *testing.T) {
	for n := 0; n < 3; n++ {
		_, err := New(squarePoints[:n])
		var invalid *InvalidPolygonError
		if !errors.As(err, &invalid) {
			t.Errorf("n=%d: got %v, want InvalidPolygonError", n, err)
		}
	}
}

func TestNewSelfIntersecting(t *testing.T) {
	bowtie := []vec.Vec2{
		{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2},
	}
	_, err := New(bowtie)
	var invalid *InvalidPolygonError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidPolygonError", err)
	}
}

func TestPoints(t *testing.T) {
	p := mustNew(t, lShapePoints)
	if p.Len() != len(lShapePoints) {
		t.Fatalf("got Len=%d, want %d", p.Len(), len(lShapePoints))
	}
	got := p.Points()
	for i, pt := range got {
		if pt != lShapePoints[i] {
			t.Errorf("vertex %d: got (%g, %g), want (%g, %g)",
				i, pt.X, pt.Y, lShapePoints[i].X, lShapePoints[i].Y)
		}
	}
}

func TestArea(t *testing.T) {
	square := mustNew(t, squarePoints)
	if a := square.Area(); math.Abs(a-4) > 1e-12 {
		t.Errorf("square: got area %g, want 4", a)
	}

	// clockwise order gives negative area
	reversed := make([]vec.Vec2, len(squarePoints))
	for i, pt := range squarePoints {
		reversed[len(squarePoints)-1-i] = pt
	}
	cw := mustNew(t, reversed)
	if a := cw.Area(); math.Abs(a+4) > 1e-12 {
		t.Errorf("clockwise square: got area %g, want -4", a)
	}

	lShape := mustNew(t, lShapePoints)
	if a := lShape.Area(); math.Abs(a-5) > 1e-12 {
		t.Errorf("L-shape: got area %g, want 5", a)
	}
}

func TestBounds(t *testing.T) {
	p := mustNew(t, lShapePoints)
	b := p.Bounds()
	if b.LLx != 0 || b.LLy != 0 || b.URx != 3 || b.URy != 3 {
		t.Errorf("got bounds (%g, %g)-(%g, %g), want (0, 0)-(3, 3)",
			b.LLx, b.LLy, b.URx, b.URy)
	}
}

func TestContains(t *testing.T) {
	square := mustNew(t, squarePoints)
	cases := []struct {
		pt   vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 0.5, Y: 0.5}, true},
		{vec.Vec2{X: 1.5, Y: 1.7}, true},
		{vec.Vec2{X: 5, Y: 5}, false},
		{vec.Vec2{X: -1, Y: 1.5}, false},
	}
	for _, tc := range cases {
		if got := square.Contains(tc.pt); got != tc.want {
			t.Errorf("square.Contains(%g, %g) = %t, want %t",
				tc.pt.X, tc.pt.Y, got, tc.want)
		}
	}

	// concave shape: points in the bounding box but outside the polygon
	lShape := mustNew(t, lShapePoints)
	if lShape.Contains(vec.Vec2{X: 2, Y: 2}) {
		t.Error("L-shape must not contain the notch point (2, 2)")
	}
	if !lShape.Contains(vec.Vec2{X: 0.5, Y: 2.5}) {
		t.Error("L-shape must contain (0.5, 2.5)")
	}
}

func TestClone(t *testing.T) {
	p := mustNew(t, squarePoints)
	q := p.Clone()

	q.verts[0].pos = vec.Vec2{X: -100, Y: -100}
	if p.verts[0].pos != squarePoints[0] {
		t.Error("mutating the clone changed the original")
	}
}

func TestPath(t *testing.T) {
	p := mustNew(t, squarePoints)

	var cmds []path.Command
	var points []vec.Vec2
	for cmd, pts := range p.Path() {
		cmds = append(cmds, cmd)
		points = append(points, pts...)
	}

	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}
	if len(cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(wantCmds))
	}
	for i, cmd := range cmds {
		if cmd != wantCmds[i] {
			t.Errorf("command %d: got %v, want %v", i, cmd, wantCmds[i])
		}
	}
	for i, pt := range points {
		if pt != squarePoints[i] {
			t.Errorf("point %d: got (%g, %g), want (%g, %g)",
				i, pt.X, pt.Y, squarePoints[i].X, squarePoints[i].Y)
		}
	}
}

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

// Package testcases provides pairs of polygons for clipping tests and for
// the demo renderers. The package only holds data; the clipping itself
// happens in the importing code.
package testcases

import "seehuhn.de/go/geom/vec"

// TestCase defines a single pair of polygons to clip.
type TestCase struct {
	Name    string     // lowercase a-z and _ only
	Subject []vec.Vec2 // simple polygon, at least 3 vertices
	Clip    []vec.Vec2 // simple polygon, at least 3 vertices

	// Intersecting is true if the two boundaries properly cross. For
	// such pairs the areas of the four boolean operations satisfy the
	// usual set identities; for disjoint or nested pairs the algorithm
	// falls back to returning the subject unchanged.
	Intersecting bool
}

// Operation selects one of the four boolean operations.
type Operation int

const (
	Union Operation = iota
	Intersection
	Difference
	ReverseDifference
)

// Operations lists all operations, for ranging in tests and demos.
var Operations = []Operation{Union, Intersection, Difference, ReverseDifference}

// String returns the operation name, usable in file names.
func (op Operation) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	case ReverseDifference:
		return "reverse_difference"
	default:
		return "unknown"
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

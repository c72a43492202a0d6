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

package testcases

import "seehuhn.de/go/geom/vec"

var convexCases = []TestCase{
	{
		// Two triangles pointing at each other; the intersection is a
		// hexagon with six intersection vertices.
		Name:         "triangles",
		Subject:      []vec.Vec2{pt(0, 0), pt(4, 0), pt(2, 3)},
		Clip:         []vec.Vec2{pt(0, 2), pt(2, -1), pt(4, 2)},
		Intersecting: true,
	},
	{
		// Axis-aligned rectangles overlapping in a 1x1 region.
		Name:         "offset_rects",
		Subject:      []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 2), pt(0, 2)},
		Clip:         []vec.Vec2{pt(3, -1), pt(6, -1), pt(6, 1), pt(3, 1)},
		Intersecting: true,
	},
	{
		// A thin sliver cutting diagonally through a square.
		Name:         "diagonal_sliver",
		Subject:      []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
		Clip:         []vec.Vec2{pt(-1, -0.5), pt(5, 4.5), pt(5, 5.5), pt(-1, 0.5)},
		Intersecting: true,
	},
}

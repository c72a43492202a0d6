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

var squaresCases = []TestCase{
	{
		// Two unit-offset squares overlapping in a 1x1 corner region.
		Name:         "overlap_corner",
		Subject:      []vec.Vec2{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)},
		Clip:         []vec.Vec2{pt(1, 1), pt(3, 1), pt(3, 3), pt(1, 3)},
		Intersecting: true,
	},
	{
		// The clip square bites a notch out of the subject's right edge.
		Name:         "overlap_edge",
		Subject:      []vec.Vec2{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)},
		Clip:         []vec.Vec2{pt(1, 0.5), pt(3, 0.5), pt(3, 1.5), pt(1, 1.5)},
		Intersecting: true,
	},
	{
		// Two crossing bars; the differences fall apart into two pieces
		// each, exercising multi-polygon results.
		Name:         "crossing_bars",
		Subject:      []vec.Vec2{pt(0, 1), pt(3, 1), pt(3, 2), pt(0, 2)},
		Clip:         []vec.Vec2{pt(1, 0), pt(2, 0), pt(2, 3), pt(1, 3)},
		Intersecting: true,
	},
}

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

var concaveCases = []TestCase{
	{
		// The example polygons from the Greiner-Hormann paper's demo: a
		// convex-ish quadrilateral subject against a strongly concave
		// clip polygon, producing several result pieces.
		Name: "paper_demo",
		Subject: []vec.Vec2{
			pt(1.5, 1.25), pt(7.5, 2.5), pt(4, 3), pt(4.5, 6.5),
		},
		Clip: []vec.Vec2{
			pt(5, 4.5), pt(3, 5.5), pt(1, 4), pt(1.5, 3.5),
			pt(0, 2), pt(3, 2.25), pt(2.5, 1), pt(5.5, 0),
		},
		Intersecting: true,
	},
	{
		// An L-shaped subject overlapped by a square spanning the inner
		// corner.
		Name: "lshape_square",
		Subject: []vec.Vec2{
			pt(0, 0), pt(3, 0), pt(3, 1), pt(1, 1), pt(1, 3), pt(0, 3),
		},
		Clip:         []vec.Vec2{pt(0.5, 0.5), pt(2, 0.5), pt(2, 2), pt(0.5, 2)},
		Intersecting: true,
	},
	{
		// A comb-like subject crossed by a horizontal bar; the
		// intersection splits into one piece per tooth.
		Name: "comb_bar",
		Subject: []vec.Vec2{
			pt(0, 0), pt(1, 0), pt(1, 2), pt(2, 2), pt(2, 0), pt(3, 0),
			pt(3, 2), pt(4, 2), pt(4, 0), pt(5, 0), pt(5, 3), pt(0, 3),
		},
		Clip:         []vec.Vec2{pt(-1, 0.5), pt(6, 0.5), pt(6, 1.5), pt(-1, 1.5)},
		Intersecting: true,
	},
}

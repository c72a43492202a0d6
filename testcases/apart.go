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

// Pairs whose boundaries never cross. The clipping algorithm cannot
// distinguish disjoint from fully nested pairs and returns the subject
// unchanged for both.
var apartCases = []TestCase{
	{
		Name:    "disjoint",
		Subject: []vec.Vec2{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
		Clip:    []vec.Vec2{pt(3, 3), pt(4, 3), pt(4, 4), pt(3, 4)},
	},
	{
		Name:    "nested",
		Subject: []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
		Clip:    []vec.Vec2{pt(1, 1), pt(3, 1), pt(3, 3), pt(1, 3)},
	},
	{
		Name:    "nested_reversed",
		Subject: []vec.Vec2{pt(1, 1), pt(3, 1), pt(3, 3), pt(1, 3)},
		Clip:    []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
	},
}

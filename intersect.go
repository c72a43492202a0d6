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

import "seehuhn.de/go/geom/vec"

// segmentIntersection computes the crossing of the segment from s1 to s2
// with the segment from c1 to c2. On success it returns the crossing point
// together with its normalized positions us along the first segment and uc
// along the second.
//
// Only proper crossings count: both parameters must lie strictly inside
// (0, 1), so endpoint-touching contacts report no intersection. Parallel and
// collinear segments also report no intersection; collinear overlap is not
// resolved.
func segmentIntersection(s1, s2, c1, c2 vec.Vec2) (pt vec.Vec2, us, uc float64, ok bool) {
	den := (c2.Y-c1.Y)*(s2.X-s1.X) - (c2.X-c1.X)*(s2.Y-s1.Y)
	if den == 0 {
		return vec.Vec2{}, 0, 0, false
	}

	us = ((c2.X-c1.X)*(s1.Y-c1.Y) - (c2.Y-c1.Y)*(s1.X-c1.X)) / den
	uc = ((s2.X-s1.X)*(s1.Y-c1.Y) - (s2.Y-s1.Y)*(s1.X-c1.X)) / den

	if us <= 0 || us >= 1 || uc <= 0 || uc >= 1 {
		return vec.Vec2{}, 0, 0, false
	}

	pt = s1.Add(s2.Sub(s1).Mul(us))
	return pt, us, uc, true
}

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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// parsePolygon parses the textual polygon syntax: vertices separated by
// semicolons, coordinates within a vertex separated by a comma. Whitespace
// around numbers is ignored.
func parsePolygon(s string) ([]vec.Vec2, error) {
	parts := strings.Split(s, ";")
	points := make([]vec.Vec2, 0, len(parts))
	for i, part := range parts {
		coords := strings.Split(part, ",")
		if len(coords) != 2 {
			return nil, fmt.Errorf("vertex %d: need \"x,y\", got %q", i+1, strings.TrimSpace(part))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: invalid x coordinate %q", i+1, strings.TrimSpace(coords[0]))
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: invalid y coordinate %q", i+1, strings.TrimSpace(coords[1]))
		}
		points = append(points, vec.Vec2{X: x, Y: y})
	}
	return points, nil
}

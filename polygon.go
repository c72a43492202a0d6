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

// Package polyclip computes boolean set operations (union, intersection,
// difference) between simple, closed 2D polygons, using the clipping
// algorithm of Greiner and Hormann.
//
// G. Greiner, K. Hormann: "Efficient Clipping of Arbitrary Polygons",
// ACM Transactions on Graphics 1998;17(2):71-83.
package polyclip

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a simple, closed 2D polygon. Its vertices live in a contiguous
// arena and form a circular doubly-linked list through integer indices (see
// the vertex type).
//
// Polygons returned by New and by the boolean operations are never mutated
// afterwards; the operations work on private clones. A Polygon is safe for
// concurrent read access, but a single clip call must not run concurrently
// with anything else touching either clone (they are private, so this holds
// automatically for the public API).
type Polygon struct {
	verts []vertex
	first int // arena index of the first vertex in traversal order
}

// InvalidPolygonError reports that a point sequence cannot form a simple
// polygon.
type InvalidPolygonError struct {
	Reason string
}

func (e *InvalidPolygonError) Error() string {
	return "invalid polygon: " + e.Reason
}

// New constructs a polygon from at least three vertices given in a
// consistent winding order. The boundary must not self-intersect; this is
// verified with the same proper-crossing test used for clipping, so
// vertices that merely touch another edge are not detected.
func New(points []vec.Vec2) (*Polygon, error) {
	if len(points) < 3 {
		return nil, &InvalidPolygonError{
			Reason: fmt.Sprintf("need at least 3 vertices, got %d", len(points)),
		}
	}

	n := len(points)
	for i := 0; i < n; i++ {
		a1 := points[i]
		a2 := points[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b1 := points[j]
			b2 := points[(j+1)%n]
			if _, _, _, ok := segmentIntersection(a1, a2, b1, b2); ok {
				return nil, &InvalidPolygonError{
					Reason: fmt.Sprintf("edges %d and %d intersect", i, j),
				}
			}
		}
	}

	p := &Polygon{}
	for _, pt := range points {
		p.push(pt)
	}
	return p, nil
}

// Len returns the number of vertices in traversal order.
func (p *Polygon) Len() int {
	return len(p.verts)
}

// Points returns the polygon's vertex coordinates in traversal order.
// The returned slice is freshly allocated.
func (p *Polygon) Points() []vec.Vec2 {
	points := make([]vec.Vec2, 0, len(p.verts))
	i := p.first
	for {
		points = append(points, p.verts[i].pos)
		i = p.verts[i].next
		if i == p.first {
			break
		}
	}
	return points
}

// Clone returns an independent copy of the polygon.
func (p *Polygon) Clone() *Polygon {
	q := &Polygon{
		verts: make([]vertex, len(p.verts)),
		first: p.first,
	}
	copy(q.verts, p.verts)
	return q
}

// Area returns the signed area of the polygon. The area is positive for
// counter-clockwise vertex order (x to the right, y upwards) and negative
// for clockwise order.
func (p *Polygon) Area() float64 {
	var sum float64
	i := p.first
	for {
		j := p.verts[i].next
		a, b := p.verts[i].pos, p.verts[j].pos
		sum += a.X*b.Y - b.X*a.Y
		i = j
		if i == p.first {
			break
		}
	}
	return sum / 2
}

// Bounds returns the polygon's bounding box.
func (p *Polygon) Bounds() rect.Rect {
	pos := p.verts[p.first].pos
	b := rect.Rect{LLx: pos.X, LLy: pos.Y, URx: pos.X, URy: pos.Y}
	for i := range p.verts {
		pos := p.verts[i].pos
		b.LLx = min(b.LLx, pos.X)
		b.LLy = min(b.LLy, pos.Y)
		b.URx = max(b.URx, pos.X)
		b.URy = max(b.URy, pos.Y)
	}
	return b
}

// Contains reports whether the point pt lies inside the polygon, using the
// even-odd rule: a ray from pt to the right is crossed an odd number of
// times by the boundary.
//
// The scan only considers edges between consecutive original vertices, so
// the test stays valid while intersection vertices from a running clip
// operation are spliced into the list.
func (p *Polygon) Contains(pt vec.Vec2) bool {
	// The ray ends just beyond the bounding box, far enough that no edge
	// can cross it to the right of its endpoint.
	far := vec.Vec2{X: p.Bounds().URx + 1, Y: pt.Y}

	crossings := 0
	i := p.first
	for {
		if !p.verts[i].intersect {
			a := p.verts[i].pos
			b := p.verts[p.nextOriginal(p.verts[i].next)].pos
			if _, _, _, ok := segmentIntersection(pt, far, a, b); ok {
				crossings++
			}
		}
		i = p.verts[i].next
		if i == p.first {
			break
		}
	}
	return crossings%2 == 1
}

// Path returns the polygon's boundary as a closed path, for use with
// rendering code built on seehuhn.de/go/geom.
func (p *Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2

		i := p.first
		buf[0] = p.verts[i].pos
		if !yield(path.CmdMoveTo, buf[:]) {
			return
		}
		for i = p.verts[i].next; i != p.first; i = p.verts[i].next {
			buf[0] = p.verts[i].pos
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

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

// noNeighbour marks a vertex without a counterpart in the other polygon.
const noNeighbour = -1

// vertex is a node in a polygon's vertex arena. Vertices form a circular
// doubly-linked list through the next and prev indices; following next from
// any vertex eventually returns to it, and next/prev are mutual inverses at
// every node.
//
// All links are indices rather than pointers. next and prev index the owning
// polygon's arena. For intersection vertices, neighbour indexes the arena of
// the other polygon taking part in the clip; the link is always mutual.
type vertex struct {
	pos vec.Vec2

	next, prev int // arena indices within the owning polygon
	neighbour  int // arena index within the other polygon, or noNeighbour

	// alpha is the normalized position in (0, 1) of an intersection point
	// along the original edge it subdivides. It orders multiple
	// intersections on the same edge and is zero on original vertices.
	alpha float64

	// entry is true if a traversal arriving at this intersection continues
	// forward, false if it continues backward. Only meaningful on
	// intersection vertices.
	entry bool

	// intersect marks vertices synthesized during intersection discovery,
	// as opposed to caller-supplied polygon corners.
	intersect bool

	// checked marks intersection vertices already consumed by result
	// assembly.
	checked bool
}

// push appends a vertex with the given coordinates just before the first
// vertex, i.e. at the end of the traversal order. It is used for original
// vertices and for building fresh output polygons, never for intersection
// vertices. It returns the new vertex's arena index.
func (p *Polygon) push(pos vec.Vec2) int {
	i := len(p.verts)
	if i == 0 {
		p.verts = append(p.verts, vertex{pos: pos, neighbour: noNeighbour})
		return 0
	}
	last := p.verts[p.first].prev
	p.verts = append(p.verts, vertex{
		pos:       pos,
		next:      p.first,
		prev:      last,
		neighbour: noNeighbour,
	})
	p.verts[last].next = i
	p.verts[p.first].prev = i
	return i
}

// pushIntersection appends a detached intersection vertex to the arena and
// returns its index. The vertex is not linked into the traversal until
// insertBetween is called.
func (p *Polygon) pushIntersection(pos vec.Vec2, alpha float64) int {
	i := len(p.verts)
	p.verts = append(p.verts, vertex{
		pos:       pos,
		neighbour: noNeighbour,
		alpha:     alpha,
		intersect: true,
	})
	return i
}

// insertBetween links the intersection vertex vi into the traversal between
// the original vertices start and end. Scanning forward from start, the
// vertex is placed before the first node whose alpha is not less than its
// own (or before end), so that multiple intersections on one edge stay
// ordered by increasing distance from start.
func (p *Polygon) insertBetween(vi, start, end int) {
	cur := start
	for cur != end && p.verts[cur].alpha < p.verts[vi].alpha {
		cur = p.verts[cur].next
	}
	before := p.verts[cur].prev
	p.verts[vi].next = cur
	p.verts[vi].prev = before
	p.verts[before].next = vi
	p.verts[cur].prev = vi
}

// nextOriginal returns the nearest vertex at or after i, skipping over
// intersection vertices. It recovers the far endpoint of an original edge
// even after intersections have been spliced into it.
func (p *Polygon) nextOriginal(i int) int {
	for p.verts[i].intersect {
		i = p.verts[i].next
	}
	return i
}

// firstUncheckedIntersection returns the first unchecked intersection vertex
// in traversal order starting at first, or noNeighbour if none remain.
func (p *Polygon) firstUncheckedIntersection() int {
	i := p.first
	for {
		if v := &p.verts[i]; v.intersect && !v.checked {
			return i
		}
		i = p.verts[i].next
		if i == p.first {
			return noNeighbour
		}
	}
}

// hasUncheckedIntersection reports whether any intersection vertex is still
// unconsumed by result assembly.
func (p *Polygon) hasUncheckedIntersection() bool {
	return p.firstUncheckedIntersection() != noNeighbour
}

// setChecked marks the vertex i as consumed, together with its counterpart
// in the other polygon, so that each physical intersection is visited
// exactly once regardless of which polygon's traversal reaches it first.
func (p *Polygon) setChecked(i int, other *Polygon) {
	p.verts[i].checked = true
	if n := p.verts[i].neighbour; n != noNeighbour {
		other.verts[n].checked = true
	}
}

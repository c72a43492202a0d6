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

// Union returns the union of the two polygons, A|B.
func (p *Polygon) Union(q *Polygon) []*Polygon {
	return clip(p, q, false, false)
}

// Intersection returns the intersection of the two polygons, A&B.
func (p *Polygon) Intersection(q *Polygon) []*Polygon {
	return clip(p, q, true, true)
}

// Difference returns the difference of the two polygons, A\B.
func (p *Polygon) Difference(q *Polygon) []*Polygon {
	return clip(p, q, false, true)
}

// ReverseDifference returns the difference of the two polygons with the
// operand roles swapped, B\A.
func (p *Polygon) ReverseDifference(q *Polygon) []*Polygon {
	return clip(q, p, false, true)
}

// clip runs the three phases of the Greiner-Hormann algorithm on private
// clones of the subject and clip polygons and returns the assembled result
// polygons. The inputs are left untouched.
//
// The entry flags seed the entry/exit classification of phase two and
// select the boolean operation:
//
//	         subject  clip
//	A|B      false    false
//	A&B      true     true
//	A\B      false    true
//	B\A      as A\B with operands swapped
//
// If the two boundaries do not cross at all, the result is a single copy of
// the subject polygon. This conflates the disjoint and the fully-nested
// case; both return the subject unchanged.
func clip(subject, clipper *Polygon, subjectEntry, clipEntry bool) []*Polygon {
	s := subject.Clone()
	c := clipper.Clone()

	findIntersections(s, c)
	markEntries(s, c, subjectEntry)
	markEntries(c, s, clipEntry)
	result := assemble(s, c)

	if len(result) == 0 {
		result = append(result, subject.Clone())
	}
	return result
}

// findIntersections is phase one: every original edge of the subject is
// tested against every original edge of the clip polygon. Each proper
// crossing produces a pair of mutually linked intersection vertices, one
// spliced into each polygon's traversal at the crossing's position along
// the respective edge.
//
// Edge endpoints are found with nextOriginal, so intersections inserted
// earlier in the same scan are never mistaken for edge endpoints.
func findIntersections(s, c *Polygon) {
	si := s.first
	for {
		if !s.verts[si].intersect {
			sEnd := s.nextOriginal(s.verts[si].next)
			ci := c.first
			for {
				if !c.verts[ci].intersect {
					cEnd := c.nextOriginal(c.verts[ci].next)
					pt, us, uc, ok := segmentIntersection(
						s.verts[si].pos, s.verts[sEnd].pos,
						c.verts[ci].pos, c.verts[cEnd].pos)
					if ok {
						is := s.pushIntersection(pt, us)
						ic := c.pushIntersection(pt, uc)
						s.verts[is].neighbour = ic
						c.verts[ic].neighbour = is

						s.insertBetween(is, si, sEnd)
						c.insertBetween(ic, ci, cEnd)
					}
				}
				ci = c.verts[ci].next
				if ci == c.first {
					break
				}
			}
		}
		si = s.verts[si].next
		if si == s.first {
			break
		}
	}
}

// markEntries is phase two for one polygon: starting from the parity of the
// first vertex relative to the other polygon, intersection vertices are
// tagged alternately as entry and exit points along the traversal.
func markEntries(p, other *Polygon, entry bool) {
	if other.Contains(p.verts[p.first].pos) {
		entry = !entry
	}
	i := p.first
	for {
		if p.verts[i].intersect {
			p.verts[i].entry = entry
			entry = !entry
		}
		i = p.verts[i].next
		if i == p.first {
			break
		}
	}
}

// assemble is phase three: while unchecked intersection vertices remain,
// each one starts a new output polygon. The traversal copies vertices
// forward from entry points and backward from exit points, switching to the
// other polygon's list at every intersection, until it arrives at an
// intersection already consumed, which closes the polygon.
func assemble(s, c *Polygon) []*Polygon {
	var result []*Polygon

	for s.hasUncheckedIntersection() {
		cur := s.firstUncheckedIntersection()
		poly, other := s, c

		out := &Polygon{}
		out.push(poly.verts[cur].pos)
		for {
			poly.setChecked(cur, other)
			if poly.verts[cur].entry {
				for {
					cur = poly.verts[cur].next
					out.push(poly.verts[cur].pos)
					if poly.verts[cur].intersect {
						break
					}
				}
			} else {
				for {
					cur = poly.verts[cur].prev
					out.push(poly.verts[cur].pos)
					if poly.verts[cur].intersect {
						break
					}
				}
			}

			n := poly.verts[cur].neighbour
			if n == noNeighbour {
				panic("polyclip: intersection vertex without neighbour link")
			}
			cur = n
			poly, other = other, poly

			if poly.verts[cur].checked {
				break
			}
		}

		out.dropClosingDuplicate()
		result = append(result, out)
	}
	return result
}

// dropClosingDuplicate removes the final vertex if it repeats the first
// one. The traversal in assemble ends on the counterpart of its starting
// intersection, which carries the same coordinates, so every assembled
// polygon closes on such a duplicate.
func (p *Polygon) dropClosingDuplicate() {
	if len(p.verts) < 2 {
		return
	}
	last := p.verts[p.first].prev
	if p.verts[last].pos != p.verts[p.first].pos {
		return
	}
	before := p.verts[last].prev
	p.verts[before].next = p.first
	p.verts[p.first].prev = before
	// The duplicate is the most recently pushed arena slot.
	p.verts = p.verts[:len(p.verts)-1]
}

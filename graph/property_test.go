package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildFromPairs adds one segment per consecutive pair of ids, using ids as
// stop names drawn from a small alphabet so that repeats happen
func buildFromPairs(ids []int, minutes []int) *Graph {
	g := New("")
	for i := 1; i < len(ids); i++ {
		m := 0
		if i < len(minutes) {
			m = minutes[i]
		}
		g.AddSegment(Segment{A: stopName(ids[i]), B: stopName(ids[i-1]), TravelTime: m})
	}
	return g
}

func stopName(i int) string {
	return "StopPoint:" + string(rune('A'+i))
}

// TestGraphInvariants checks properties that hold for any sequence of segments
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	ids := gen.SliceOf(gen.IntRange(0, 7))
	minutes := gen.SliceOf(gen.IntRange(0, 120))

	properties.Property("every segment endpoint is a node", prop.ForAll(
		func(ids []int, minutes []int) bool {
			g := buildFromPairs(ids, minutes)
			for _, s := range g.Segments() {
				if !g.HasStop(s.A) || !g.HasStop(s.B) {
					return false
				}
			}
			return true
		},
		ids, minutes,
	))

	properties.Property("degree sum is twice the edge count", prop.ForAll(
		func(ids []int, minutes []int) bool {
			g := buildFromPairs(ids, minutes)
			return g.DegreeSum() == 2*g.NumSegments()
		},
		ids, minutes,
	))

	properties.Property("segments are listed once each", prop.ForAll(
		func(ids []int, minutes []int) bool {
			g := buildFromPairs(ids, minutes)
			segs := g.Segments()
			if len(segs) != g.NumSegments() {
				return false
			}
			seen := map[[2]string]bool{}
			for _, s := range segs {
				k := [2]string{s.A, s.B}
				if s.B < s.A {
					k = [2]string{s.B, s.A}
				}
				if seen[k] {
					return false
				}
				seen[k] = true
			}
			return true
		},
		ids, minutes,
	))

	properties.Property("building twice gives the same graph", prop.ForAll(
		func(ids []int, minutes []int) bool {
			g1 := buildFromPairs(ids, minutes)
			g2 := buildFromPairs(ids, minutes)
			s1, s2 := g1.Segments(), g2.Segments()
			if len(s1) != len(s2) {
				return false
			}
			for i := range s1 {
				if s1[i] != s2[i] {
					return false
				}
			}
			n1, n2 := g1.Stops(), g2.Stops()
			for i := range n1 {
				if n1[i] != n2[i] {
					return false
				}
			}
			return len(n1) == len(n2)
		},
		ids, minutes,
	))

	properties.Property("components never exceed nodes", prop.ForAll(
		func(ids []int, minutes []int) bool {
			g := buildFromPairs(ids, minutes)
			c := g.ConnectedComponents()
			return c <= g.NumStops() && (g.NumStops() == 0) == (c == 0)
		},
		ids, minutes,
	))

	properties.TestingRun(t)
}

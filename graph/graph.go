package graph

type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// Graph is an undirected simple graph of stops. Self-loops are allowed.
type Graph struct {
	Name string

	stops   []Stop
	index   map[string]int
	adj     [][]int
	weights map[pair]int
}

// New creates an empty graph
func New(name string) *Graph {
	return &Graph{
		Name:    name,
		index:   map[string]int{},
		weights: map[pair]int{},
	}
}

// AddStop adds the node if absent and returns its position
func (g *Graph) AddStop(s Stop) int {
	if i, ok := g.index[s.ID]; ok {
		return i
	}
	i := len(g.stops)
	g.stops = append(g.stops, s)
	g.adj = append(g.adj, nil)
	g.index[s.ID] = i
	return i
}

// SetStop replaces the attributes of an existing node or adds it. It reports
// whether the node already existed.
func (g *Graph) SetStop(s Stop) bool {
	if i, ok := g.index[s.ID]; ok {
		g.stops[i] = s
		return true
	}
	g.AddStop(s)
	return false
}

// AddSegment adds both endpoints if needed, then adds the edge or overwrites its
// travel time when the pair is already connected. It reports whether the edge
// already existed.
func (g *Graph) AddSegment(seg Segment) bool {
	a := g.AddStop(Stop{ID: seg.A})
	b := g.AddStop(Stop{ID: seg.B})
	p := makePair(a, b)
	_, existed := g.weights[p]
	g.weights[p] = seg.TravelTime
	if !existed {
		g.adj[a] = append(g.adj[a], b)
		if a != b {
			g.adj[b] = append(g.adj[b], a)
		}
	}
	return existed
}

// Stop looks a node up by ID
func (g *Graph) Stop(id string) (Stop, bool) {
	i, ok := g.index[id]
	if !ok {
		return Stop{}, false
	}
	return g.stops[i], true
}

// HasStop reports whether id is a node
func (g *Graph) HasStop(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Segment returns the edge between a and b in either orientation
func (g *Graph) Segment(a, b string) (Segment, bool) {
	i, ok := g.index[a]
	if !ok {
		return Segment{}, false
	}
	j, ok := g.index[b]
	if !ok {
		return Segment{}, false
	}
	t, ok := g.weights[makePair(i, j)]
	if !ok {
		return Segment{}, false
	}
	return Segment{A: a, B: b, TravelTime: t}, true
}

// NumStops returns the node count
func (g *Graph) NumStops() int { return len(g.stops) }

// NumSegments returns the edge count
func (g *Graph) NumSegments() int { return len(g.weights) }

// Stops returns the nodes in insertion order
func (g *Graph) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Segments returns every edge once. Nodes are visited in insertion order and
// each node's neighbours in the order they were connected; an edge is emitted
// from whichever endpoint is visited first.
func (g *Graph) Segments() []Segment {
	out := make([]Segment, 0, len(g.weights))
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j < i {
				continue
			}
			out = append(out, Segment{
				A:          g.stops[i].ID,
				B:          g.stops[j].ID,
				TravelTime: g.weights[makePair(i, j)],
			})
		}
	}
	return out
}

// Degree returns the number of edge ends at id; a self-loop counts twice
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}
	d := len(g.adj[i])
	if _, loop := g.weights[pair{i, i}]; loop {
		d++
	}
	return d
}

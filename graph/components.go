package graph

import "container/list"

// ConnectedComponents returns the number of connected components, counting each
// isolated stop as its own component
func (g *Graph) ConnectedComponents() int {
	visited := make([]bool, len(g.stops))
	count := 0

	// BFS from every unvisited node
	for start := range g.stops {
		if visited[start] {
			continue
		}
		count++
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true
		for queue.Len() > 0 {
			n, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			for _, m := range g.adj[n] {
				if !visited[m] {
					visited[m] = true
					queue.PushBack(m)
				}
			}
		}
	}
	return count
}

// DegreeSum returns the sum of all node degrees, which is twice the edge count
func (g *Graph) DegreeSum() int {
	sum := 0
	for _, s := range g.stops {
		sum += g.Degree(s.ID)
	}
	return sum
}

package datastructure

// ReachableTargets runs a breadth-first walk from start and splits targets into the ones
// visited (same order, duplicates kept) and the positions in targets that were not.
func ReachableTargets(g *Graph, start Index, targets []Index) ([]Index, []int) {
	visited := make([]bool, g.NumberOfVertices())
	queue := make([]Index, 0, 16)

	visited[start] = true
	queue = append(queue, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		g.ForOutEdgesOf(u, func(e Edge) {
			v := e.GetHead()
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		})
	}

	reachable := make([]Index, 0, len(targets))
	dropped := make([]int, 0)
	for i, t := range targets {
		if g.IsValidVertex(t) && visited[t] {
			reachable = append(reachable, t)
		} else {
			dropped = append(dropped, i)
		}
	}
	return reachable, dropped
}

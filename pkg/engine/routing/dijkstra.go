package routing

import (
	"github.com/lintang-b-s/bestpath/pkg"
	da "github.com/lintang-b-s/bestpath/pkg/datastructure"
)

// PathResult shortest path from the last search source to one target.
// Path is nil when the target is unreachable, TotalCost is then 0: check Path, not the cost.
type PathResult struct {
	Path      []da.Index
	Target    da.Index
	TotalCost int64
}

func (pr PathResult) Found() bool {
	return pr.Path != nil
}

type Dijkstra struct {
	graph *da.Graph

	dist    []int64
	parent  []da.Index
	settled []bool
	source  da.Index

	pq *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, heapArity int) *Dijkstra {
	return &Dijkstra{
		graph:  graph,
		pq:     da.NewdAryHeap[da.Index](heapArity),
		source: da.INVALID_VERTEX_ID,
	}
}

// ShortestPath single-source shortest paths from s to all other vertices.
// The search runs until the queue is empty so one run answers every target.
func (us *Dijkstra) ShortestPath(s da.Index) {
	us.Preallocate()
	us.source = s

	us.dist[s] = 0
	us.pq.Insert(da.NewPriorityQueueNode(0, s))

	for !us.pq.IsEmpty() {
		us.graphSearchUni()
	}
}

func (us *Dijkstra) graphSearchUni() {
	node, _ := us.pq.ExtractMin()
	uId := node.GetItem()
	if us.settled[uId] {
		// stale entry, u was already settled with a smaller distance
		return
	}
	us.settled[uId] = true
	us.numSettledNodes++

	us.graph.ForOutEdgesOf(uId, func(e da.Edge) {
		vId := e.GetHead()
		if us.settled[vId] {
			return
		}
		newDist := us.dist[uId] + e.GetWeight()
		if newDist >= us.dist[vId] {
			return
		}
		us.dist[vId] = newDist
		us.parent[vId] = uId
		us.pq.Insert(da.NewPriorityQueueNode(newDist, vId))
	})
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfVertices()
	us.dist = make([]int64, n)
	us.parent = make([]da.Index, n)
	us.settled = make([]bool, n)
	for i := 0; i < n; i++ {
		us.dist[i] = pkg.INF_WEIGHT
		us.parent[i] = da.INVALID_VERTEX_ID
	}
	us.pq.Preallocate(us.graph.NumberOfEdges() + 1)
	us.numSettledNodes = 0
}

// GetDistance distance from the last source, false when t is unreachable.
func (us *Dijkstra) GetDistance(t da.Index) (int64, bool) {
	if int(t) >= len(us.dist) || us.dist[t] == pkg.INF_WEIGHT {
		return 0, false
	}
	return us.dist[t], true
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

// PathTo rebuilds the path source..t by walking predecessors.
func (us *Dijkstra) PathTo(t da.Index) PathResult {
	dist, ok := us.GetDistance(t)
	if !ok {
		return PathResult{Path: nil, Target: t, TotalCost: 0}
	}

	path := make([]da.Index, 0, 8)
	for cur := t; cur != da.INVALID_VERTEX_ID; cur = us.parent[cur] {
		path = append(path, cur)
	}
	reverse(path)

	if path[0] != us.source {
		return PathResult{Path: nil, Target: t, TotalCost: 0}
	}
	return PathResult{Path: path, Target: t, TotalCost: dist}
}

// FindShortestPaths one search from s, one PathResult per target in targets order.
func (us *Dijkstra) FindShortestPaths(s da.Index, targets []da.Index) []PathResult {
	us.ShortestPath(s)
	results := make([]PathResult, 0, len(targets))
	for _, t := range targets {
		results = append(results, us.PathTo(t))
	}
	return results
}

func reverse(path []da.Index) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

package datastructure

type Index uint32

const INVALID_VERTEX_ID Index = ^Index(0)

type Edge struct {
	head   Index
	weight int64
}

func NewEdge(head Index, weight int64) Edge {
	return Edge{head: head, weight: weight}
}

func (e Edge) GetHead() Index {
	return e.head
}

func (e Edge) GetWeight() int64 {
	return e.weight
}

// Graph is a directed grid graph: one vertex per matrix cell (row-major), adjacency lists of outgoing edges.
type Graph struct {
	adj          [][]Edge
	transform    Transform
	numberOfEdge int
}

func NewGraph(transform Transform) *Graph {
	return &Graph{
		adj:       make([][]Edge, transform.Rows()*transform.Cols()),
		transform: transform,
	}
}

func (g *Graph) AddEdge(tail Index, e Edge) {
	g.adj[tail] = append(g.adj[tail], e)
	g.numberOfEdge++
}

func (g *Graph) NumberOfVertices() int {
	return len(g.adj)
}

func (g *Graph) NumberOfEdges() int {
	return g.numberOfEdge
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.adj[u])
}

func (g *Graph) GetOutEdges(u Index) []Edge {
	return g.adj[u]
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e Edge)) {
	for _, e := range g.adj[u] {
		handle(e)
	}
}

func (g *Graph) GetTransform() Transform {
	return g.transform
}

func (g *Graph) IsValidVertex(u Index) bool {
	return int(u) < len(g.adj)
}

package graph

import (
	"errors"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/lib"
)

// All graph mutation failures are recoverable: the graph is left unchanged
// and the caller decides whether to skip or abort.
var (
	ErrDuplicateNode = errors.New("graph: node id already present")
	ErrNodeLimit     = errors.New("graph: node limit exceeded")
	ErrSelfLoop      = errors.New("graph: self-loop edge")
	ErrDuplicateEdge = errors.New("graph: edge already present")
)

// Node is a graph vertex: one named entity with a geographic coordinate and
// a 3D position derived from it. All fields are set at creation and never
// change; in particular the position is always the projection of the
// geographic coordinate, it can not be set independently.
type Node struct {
	id    int
	label string
	geo   geo.Coord
	pos   geo.Vec3
}

// NewNode creates a node whose position is derived from c by p.
func NewNode(id int, label string, c geo.Coord, p geo.Projector) *Node {
	return &Node{
		id:    id,
		label: label,
		geo:   c,
		pos:   p.Project(c),
	}
}

func (n *Node) ID() int { return n.id }

func (n *Node) Label() string { return n.label }

func (n *Node) Geo() geo.Coord { return n.geo }

func (n *Node) Position() geo.Vec3 { return n.pos }

// Edge is an unordered connection between two distinct nodes. Edges are
// created only through Graph.AddEdge, which enforces simplicity.
type Edge struct {
	Source *Node
	Target *Node
}

type edgeKey struct {
	lo, hi int
}

func keyFor(a, b *Node) edgeKey {
	if a.id < b.id {
		return edgeKey{a.id, b.id}
	}
	return edgeKey{b.id, a.id}
}

// Graph is a simple undirected graph that only ever grows: there are no
// removal operations. It exclusively owns its node and edge records; the
// slices returned from Nodes and Edges are copies for iteration.
//
// Graph is not safe for concurrent mutation. In this codebase it is built
// once at startup and treated as read-only afterwards, so no locking is
// needed.
type Graph struct {
	nodeLimit int // 0 means unlimited
	byID      map[int]*Node
	nodes     []*Node
	edges     []Edge
	seenEdges lib.Set[edgeKey]
}

// New creates an empty graph. nodeLimit caps how many nodes AddNode will
// accept; 0 disables the cap.
func New(nodeLimit int) *Graph {
	return &Graph{
		nodeLimit: nodeLimit,
		byID:      make(map[int]*Node),
		seenEdges: lib.NewSet[edgeKey](),
	}
}

// AddNode registers n. It fails with ErrDuplicateNode if a node with the
// same id is already present, or ErrNodeLimit if the configured cap is
// reached.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.byID[n.id]; ok {
		return ErrDuplicateNode
	}
	if g.nodeLimit > 0 && len(g.nodes) >= g.nodeLimit {
		return ErrNodeLimit
	}
	g.byID[n.id] = n
	g.nodes = append(g.nodes, n)
	return nil
}

// AddEdge registers an edge between a and b. It fails with ErrSelfLoop if
// a and b are the same node, or ErrDuplicateEdge if the unordered pair is
// already connected (in either direction).
func (g *Graph) AddEdge(a, b *Node) error {
	if a.id == b.id {
		return ErrSelfLoop
	}
	key := keyFor(a, b)
	if g.seenEdges.Contains(key) {
		return ErrDuplicateEdge
	}
	g.seenEdges.Add(key)
	g.edges = append(g.edges, Edge{Source: a, Target: b})
	return nil
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id int) *Node {
	return g.byID[id]
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return len(g.edges) }

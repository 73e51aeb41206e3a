package graph

import (
	"errors"
	"fmt"
	"testing"

	"github.com/psidex/worldlines/internal/geo"
)

var testProjector = geo.NewProjector(0)

func testNode(id int, label string) *Node {
	return NewNode(id, label, geo.Coord{Lat: float64(id), Lon: float64(id * 2)}, testProjector)
}

func TestAddNodeDuplicateID(t *testing.T) {
	g := New(0)

	if err := g.AddNode(testNode(1, "London")); err != nil {
		t.Fatalf("first AddNode: %v", err)
	}
	err := g.AddNode(testNode(1, "Paris"))
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("second AddNode err = %v, want ErrDuplicateNode", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", g.NodeCount())
	}
	if g.Node(1).Label() != "London" {
		t.Errorf("failed add mutated the graph: node 1 is %q", g.Node(1).Label())
	}
}

func TestNodeLimit(t *testing.T) {
	const limit = 3
	g := New(limit)

	var failed int
	for i := 1; i <= 5; i++ {
		err := g.AddNode(testNode(i, fmt.Sprintf("city %d", i)))
		if err != nil {
			if !errors.Is(err, ErrNodeLimit) {
				t.Errorf("AddNode(%d) err = %v, want ErrNodeLimit", i, err)
			}
			failed++
		}
	}

	if g.NodeCount() != limit {
		t.Errorf("NodeCount = %d, want %d", g.NodeCount(), limit)
	}
	if failed != 2 {
		t.Errorf("%d adds failed, want 2", failed)
	}
}

func TestAddEdgeSelfLoop(t *testing.T) {
	g := New(0)
	a := testNode(1, "a")
	if err := g.AddNode(a); err != nil {
		t.Fatal(err)
	}

	if err := g.AddEdge(a, a); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("AddEdge(a, a) err = %v, want ErrSelfLoop", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestAddEdgeDuplicateUnorderedPair(t *testing.T) {
	g := New(0)
	a, b := testNode(1, "a"), testNode(2, "b")
	for _, n := range []*Node{a, b} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.AddEdge(a, b); err != nil {
		t.Fatalf("first AddEdge: %v", err)
	}
	if err := g.AddEdge(a, b); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("repeat AddEdge err = %v, want ErrDuplicateEdge", err)
	}
	// The pair is unordered, so the reverse direction is a duplicate too.
	if err := g.AddEdge(b, a); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("reversed AddEdge err = %v, want ErrDuplicateEdge", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New(0)
	labels := []string{"c", "a", "b"}
	for i, l := range labels {
		if err := g.AddNode(testNode(i+1, l)); err != nil {
			t.Fatal(err)
		}
	}

	nodes := g.Nodes()
	for i, l := range labels {
		if nodes[i].Label() != l {
			t.Errorf("nodes[%d] = %q, want %q", i, nodes[i].Label(), l)
		}
	}

	if err := g.AddEdge(nodes[2], nodes[0]); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(nodes[0], nodes[1]); err != nil {
		t.Fatal(err)
	}

	edges := g.Edges()
	if edges[0].Source.Label() != "b" || edges[1].Source.Label() != "c" {
		t.Errorf("edges not in insertion order: %q then %q",
			edges[0].Source.Label(), edges[1].Source.Label())
	}
}

func TestViewsAreCopies(t *testing.T) {
	g := New(0)
	if err := g.AddNode(testNode(1, "a")); err != nil {
		t.Fatal(err)
	}

	nodes := g.Nodes()
	nodes[0] = nil

	if g.Node(1) == nil || g.Nodes()[0] == nil {
		t.Error("mutating the returned slice affected the graph")
	}
}

func TestNodePositionDerivedFromGeo(t *testing.T) {
	c := geo.Coord{Lat: 35.6762, Lon: 139.6503}
	n := NewNode(1, "Tokyo", c, testProjector)

	if n.Position() != testProjector.Project(c) {
		t.Errorf("Position = %+v, want projection of %+v", n.Position(), c)
	}
	if n.Geo() != c {
		t.Errorf("Geo = %+v, want %+v", n.Geo(), c)
	}
}

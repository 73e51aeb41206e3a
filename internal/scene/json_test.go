package scene

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
)

func testEdge(t *testing.T) (graph.Edge, []geo.Vec3) {
	t.Helper()

	p := geo.NewProjector(0)
	a := graph.NewNode(1, "London", geo.Coord{Lat: 51.5074, Lon: -0.1278}, p)
	b := graph.NewNode(2, "Tokyo", geo.Coord{Lat: 35.6762, Lon: 139.6503}, p)

	e := graph.Edge{Source: a, Target: b}
	points := geo.NewArcBuilder(8).Points(a.Position(), b.Position())
	return e, points
}

func TestJSONSceneRenderToFile(t *testing.T) {
	e, points := testEdge(t)

	j := NewJSONScene()
	j.AddNode(e.Source)
	j.AddNode(e.Target)
	j.AddArc(e, points)

	// Re-adding is a no-op: the render loop re-enumerates every frame.
	j.AddNode(e.Source)
	j.AddArc(e, points)

	filename := filepath.Join(t.TempDir(), "scene")
	if err := j.RenderToFile(filename); err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}

	data, err := os.ReadFile(filename + ".json")
	if err != nil {
		t.Fatal(err)
	}

	var doc sceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(doc.Nodes))
	}
	if len(doc.Arcs) != 1 {
		t.Fatalf("got %d arcs, want 1", len(doc.Arcs))
	}
	if len(doc.Arcs[0].Points) != 8 {
		t.Errorf("arc has %d points, want 8", len(doc.Arcs[0].Points))
	}
	if doc.Nodes[0].Label != "London" || doc.Nodes[0].Position != e.Source.Position() {
		t.Errorf("unexpected first node: %+v", doc.Nodes[0])
	}
}

func TestArcKeyUnordered(t *testing.T) {
	e, _ := testEdge(t)
	reversed := graph.Edge{Source: e.Target, Target: e.Source}

	if arcKey(e) != arcKey(reversed) {
		t.Errorf("arcKey depends on direction: %v != %v", arcKey(e), arcKey(reversed))
	}
}

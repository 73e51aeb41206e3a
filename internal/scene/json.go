package scene

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
	. "github.com/psidex/worldlines/internal/lib"
)

// JSONScene defines a CliProvider that serializes the node positions and arc
// polylines to a JSON file, for frontends that do their own drawing.
type JSONScene struct {
	mu        *sync.RWMutex
	seenNodes Set[int]
	seenArcs  Set[[2]int]
	doc       sceneDoc
}

type sceneDoc struct {
	Nodes []sceneNode `json:"nodes"`
	Arcs  []sceneArc  `json:"arcs"`
}

type sceneNode struct {
	ID       int       `json:"id"`
	Label    string    `json:"label"`
	Geo      geo.Coord `json:"geo"`
	Position geo.Vec3  `json:"position"`
}

type sceneArc struct {
	Source int        `json:"source"`
	Target int        `json:"target"`
	Points []geo.Vec3 `json:"points"`
}

var _ CliProvider = (*JSONScene)(nil)

func NewJSONScene() *JSONScene {
	return &JSONScene{
		mu:        &sync.RWMutex{},
		seenNodes: NewSet[int](),
		seenArcs:  NewSet[[2]int](),
	}
}

func (j *JSONScene) AddNode(n *graph.Node) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.seenNodes.Contains(n.ID()) {
		return
	}
	j.seenNodes.Add(n.ID())

	j.doc.Nodes = append(j.doc.Nodes, sceneNode{
		ID:       n.ID(),
		Label:    n.Label(),
		Geo:      n.Geo(),
		Position: n.Position(),
	})
}

func (j *JSONScene) AddArc(edge graph.Edge, points []geo.Vec3) {
	if len(points) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	key := arcKey(edge)
	if j.seenArcs.Contains(key) {
		return
	}
	j.seenArcs.Add(key)

	j.doc.Arcs = append(j.doc.Arcs, sceneArc{
		Source: edge.Source.ID(),
		Target: edge.Target.ID(),
		Points: points,
	})
}

func (j *JSONScene) toJson() ([]byte, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return json.MarshalIndent(j.doc, "", "  ")
}

func (j *JSONScene) RenderToFile(filename string) error {
	filename = filename + ".json"

	jsonData, err := j.toJson()
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(jsonData)
	if err != nil {
		return err
	}

	return nil
}

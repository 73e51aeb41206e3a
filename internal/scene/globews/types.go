package globews

import "fmt"

type nodeData struct {
	Key   int     `json:"key"`
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

type nodeMsg struct {
	Type string   `json:"type"` // always "node"
	Data nodeData `json:"data"`
}

func newNodeMsg(data nodeData) nodeMsg {
	return nodeMsg{Type: "node", Data: data}
}

type arcData struct {
	Source int          `json:"source"`
	Target int          `json:"target"`
	Points [][3]float64 `json:"points"`
}

type arcMsg struct {
	Type string  `json:"type"` // always "arc"
	Data arcData `json:"data"`
}

func newArcMsg(data arcData) arcMsg {
	return arcMsg{Type: "arc", Data: data}
}

func frameStartNotification(frame uint64) []byte {
	return []byte(fmt.Sprintf(
		`{"type": "framestart", "data": {"frame": %d}}`, frame,
	))
}

func frameEndNotification(frame uint64, nodes, arcs int) []byte {
	return []byte(fmt.Sprintf(
		`{"type": "frameend", "data": {"frame": %d, "nodes": %d, "arcs": %d}}`,
		frame, nodes, arcs,
	))
}

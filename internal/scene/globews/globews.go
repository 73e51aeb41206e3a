package globews

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
	"github.com/psidex/worldlines/internal/lib"
	"github.com/psidex/worldlines/internal/scene"
)

// GlobeWs defines a scene.WebsocketProvider that streams scene deltas to a
// browser frontend as JSON over a websocket. The frontend owns the actual
// sphere mesh, camera, and controls; it only ever receives each node and arc
// once, bracketed by frame notifications so it can batch updates.
type GlobeWs struct {
	mu *sync.Mutex
	ws lib.ThreadSafeWebSocket
	// Keep track of what's already been streamed so per-frame re-enumeration
	// doesn't resend the whole scene.
	seenNodes lib.Set[int]
	seenArcs  lib.Set[[2]int]
}

// All of the websocket messages sent by GlobeWs will be text.
var t = websocket.TextMessage

var _ scene.WebsocketProvider = (*GlobeWs)(nil)

func NewGlobeWs(ws lib.ThreadSafeWebSocket) *GlobeWs {
	return &GlobeWs{
		mu:        &sync.Mutex{},
		ws:        ws,
		seenNodes: lib.NewSet[int](),
		seenArcs:  lib.NewSet[[2]int](),
	}
}

func (g *GlobeWs) AddNode(n *graph.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seenNodes.Contains(n.ID()) {
		return
	}
	g.seenNodes.Add(n.ID())

	p := n.Position()
	c := n.Geo()
	msg, err := json.Marshal(newNodeMsg(nodeData{
		Key:   n.ID(),
		Label: n.Label(),
		Lat:   c.Lat,
		Lon:   c.Lon,
		X:     p.X,
		Y:     p.Y,
		Z:     p.Z,
	}))
	if err != nil {
		log.Print("node marshal err:", err)
		return
	}

	if err := g.ws.WriteMessage(t, msg); err != nil {
		log.Print("ws.WriteMessage err:", err)
	}
}

func (g *GlobeWs) AddArc(edge graph.Edge, points []geo.Vec3) {
	if len(points) == 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	a, b := edge.Source.ID(), edge.Target.ID()
	key := [2]int{a, b}
	if a > b {
		key = [2]int{b, a}
	}
	if g.seenArcs.Contains(key) {
		return
	}
	g.seenArcs.Add(key)

	flat := make([][3]float64, len(points))
	for i, p := range points {
		flat[i] = [3]float64{p.X, p.Y, p.Z}
	}

	msg, err := json.Marshal(newArcMsg(arcData{
		Source: a,
		Target: b,
		Points: flat,
	}))
	if err != nil {
		log.Print("arc marshal err:", err)
		return
	}

	if err := g.ws.WriteMessage(t, msg); err != nil {
		log.Print("ws.WriteMessage err:", err)
	}
}

func (g *GlobeWs) NotifyFrameStart(frame uint64) {
	if err := g.ws.WriteMessage(t, frameStartNotification(frame)); err != nil {
		log.Print("NotifyFrameStart ws.WriteMessage err:", err)
	}
}

func (g *GlobeWs) NotifyFrameEnd(frame uint64, nodes, arcs int) {
	if err := g.ws.WriteMessage(t, frameEndNotification(frame, nodes, arcs)); err != nil {
		log.Print("NotifyFrameEnd ws.WriteMessage err:", err)
	}
}

package scene

import (
	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
)

// Provider defines an interface that accepts draw requests for the globe
// scene: city nodes placed on the sphere and the arcs connecting them. The
// provider owns everything visual (camera, controls, presentation); this
// codebase only feeds it geometry.
type Provider interface {
	// AddNode should be thread-safe. Providers are expected to ignore a
	// node they have already drawn, since the render loop re-enumerates the
	// whole graph every frame.
	AddNode(n *graph.Node)

	// AddArc should be thread-safe. points is the sampled polyline for the
	// edge; it is recomputed by the caller on every draw, so providers must
	// not assume pointer identity between frames.
	AddArc(e graph.Edge, points []geo.Vec3)
}

// CliProvider extends the Provider interface to accommodate CLI
// functionality.
type CliProvider interface {
	Provider

	// RenderToFile is not assumed to be thread-safe.
	// filename should be the desired file name without an extension.
	RenderToFile(filename string) error
}

// WebsocketProvider extends the Provider interface to accommodate WebSocket
// functionality. Frame notifications let the frontend batch scene updates:
// everything sent between a start and an end belongs to one frame.
type WebsocketProvider interface {
	Provider

	NotifyFrameStart(frame uint64)
	NotifyFrameEnd(frame uint64, nodes, arcs int)
}

package globe

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
	"github.com/psidex/worldlines/internal/lib"
	"github.com/psidex/worldlines/internal/scene"
)

type Config struct {
	NodeLimit     int          `json:"nodeLimit"`
	ArcSamples    int          `json:"arcSamples"`
	SphereRadius  float64      `json:"sphereRadius"`
	FrameInterval lib.Duration `json:"frameInterval"`
}

// Globe ties the graph, projector, and arc builder to a scene provider. It
// is the explicit drawing context: the graph and projection are immutable
// after Build, and the frame loop only ever reads them.
type Globe struct {
	// Set in New(...).
	cfg       Config
	projector geo.Projector
	arcs      geo.ArcBuilder
	provider  scene.Provider
	// Set by Build().
	graph *graph.Graph
	frame uint64
	// Set / reset at the start of Start().
	cancel     chan struct{}
	cancelOnce *sync.Once
	wg         *sync.WaitGroup
}

func New(cfg Config, provider scene.Provider) *Globe {
	if cfg.FrameInterval.Duration <= 0 {
		cfg.FrameInterval = lib.DurationFrom(time.Millisecond * 100)
	}
	return &Globe{
		cfg:       cfg,
		projector: geo.NewProjector(cfg.SphereRadius),
		arcs:      geo.NewArcBuilder(cfg.ArcSamples),
		provider:  provider,
	}
}

// Build constructs the graph once: one node per city in input order, then an
// edge connecting every pair of cities. Hitting the configured node limit
// stops node creation but is not an error; any other graph failure aborts.
func (g *Globe) Build(cities []City) error {
	gr := graph.New(g.cfg.NodeLimit)

	for i, c := range cities {
		n := graph.NewNode(i+1, c.Name, geo.Coord{Lat: c.Lat, Lon: c.Lon}, g.projector)
		if err := gr.AddNode(n); err != nil {
			if errors.Is(err, graph.ErrNodeLimit) {
				log.Printf("Node limit %d reached, skipping %q onwards\n", g.cfg.NodeLimit, c.Name)
				break
			}
			return fmt.Errorf("adding city %q: %w", c.Name, err)
		}
	}

	nodes := gr.Nodes()
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if err := gr.AddEdge(nodes[i], nodes[j]); err != nil {
				return fmt.Errorf("connecting %q to %q: %w",
					nodes[i].Label(), nodes[j].Label(), err)
			}
		}
	}

	g.graph = gr
	return nil
}

func (g *Globe) Graph() *graph.Graph {
	return g.graph
}

// RenderFrame enumerates the nodes for position refresh and the edges for
// curve refresh, forwarding both to the provider. Arc polylines are
// ephemeral and recomputed on every call.
func (g *Globe) RenderFrame() {
	g.frame++

	wsp, isWs := g.provider.(scene.WebsocketProvider)
	if isWs {
		wsp.NotifyFrameStart(g.frame)
	}

	for _, n := range g.graph.Nodes() {
		g.provider.AddNode(n)
	}

	edges := g.graph.Edges()
	for _, e := range edges {
		points := g.arcs.Points(e.Source.Position(), e.Target.Position())
		g.provider.AddArc(e, points)
	}

	if isWs {
		wsp.NotifyFrameEnd(g.frame, g.graph.NodeCount(), len(edges))
	}
}

// Start begins the frame loop, re-rendering the already-built scene every
// FrameInterval until Cancel is called.
func (g *Globe) Start() error {
	if g.graph == nil {
		return errors.New("globe: Start called before Build")
	}

	g.cancel = make(chan struct{})
	g.cancelOnce = &sync.Once{}
	g.wg = &sync.WaitGroup{}

	g.wg.Add(1)
	go g.frameLoop()

	return nil
}

// Cancel stops the frame loop and blocks until its goroutine has exited.
// Safe to call more than once.
func (g *Globe) Cancel() {
	g.cancelOnce.Do(func() { close(g.cancel) })
	g.wg.Wait()
}

func (g *Globe) frameLoop() {
	defer g.wg.Done()

	ticker := time.NewTicker(g.cfg.FrameInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-g.cancel:
			log.Printf("Frame loop canceled after %d frames\n", g.frame)
			return
		case <-ticker.C:
			g.RenderFrame()
		}
	}
}

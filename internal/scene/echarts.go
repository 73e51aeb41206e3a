package scene

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/psidex/worldlines/internal/geo"
	"github.com/psidex/worldlines/internal/graph"
	. "github.com/psidex/worldlines/internal/lib"
)

// ECharts defines a CliProvider that renders the scene as a go-echarts HTML
// file: a scatter3D chart for the city nodes and a line3D chart with one
// series per arc.
type ECharts struct {
	mu        *sync.Mutex
	seenNodes Set[int]
	seenArcs  Set[[2]int]
	nodes     []opts.Chart3DData
	arcs      []arcSeries
}

type arcSeries struct {
	name   string
	points []opts.Chart3DData
}

var _ CliProvider = (*ECharts)(nil)

func NewECharts() *ECharts {
	return &ECharts{
		mu:        &sync.Mutex{},
		seenNodes: NewSet[int](),
		seenArcs:  NewSet[[2]int](),
		nodes:     []opts.Chart3DData{},
		arcs:      []arcSeries{},
	}
}

func (e *ECharts) AddNode(n *graph.Node) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seenNodes.Contains(n.ID()) {
		return
	}
	e.seenNodes.Add(n.ID())

	p := n.Position()
	e.nodes = append(e.nodes, opts.Chart3DData{
		Name:  n.Label(),
		Value: []interface{}{p.X, p.Y, p.Z},
	})
}

func (e *ECharts) AddArc(edge graph.Edge, points []geo.Vec3) {
	if len(points) == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := arcKey(edge)
	if e.seenArcs.Contains(key) {
		return
	}
	e.seenArcs.Add(key)

	data := make([]opts.Chart3DData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.Chart3DData{
			Value: []interface{}{p.X, p.Y, p.Z},
		})
	}

	e.arcs = append(e.arcs, arcSeries{
		name:   fmt.Sprintf("%s - %s", edge.Source.Label(), edge.Target.Label()),
		points: data,
	})
}

func (e ECharts) RenderToFile(filename string) error {
	filename = filename + ".html"

	e.mu.Lock()
	defer e.mu.Unlock()

	page := components.NewPage()
	page.AddCharts(nodeChart(e.nodes), arcChart(e.arcs))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	return page.Render(io.MultiWriter(f))
}

// arcKey builds an order-independent identity for an edge so an arc drawn
// from either direction dedupes to the same entry.
func arcKey(e graph.Edge) [2]int {
	a, b := e.Source.ID(), e.Target.ID()
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func nodeChart(nodes []opts.Chart3DData) *charts.Scatter3D {
	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "worldlines scene",
			Height:    "50vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithGrid3DOpts(opts.Grid3D{
			BoxWidth:  160,
			BoxHeight: 160,
			BoxDepth:  160,
		}),
	)
	scatter.AddSeries("cities", nodes)
	return scatter
}

func arcChart(arcs []arcSeries) *charts.Line3D {
	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "50vh",
			Width:  "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithGrid3DOpts(opts.Grid3D{
			BoxWidth:  160,
			BoxHeight: 160,
			BoxDepth:  160,
		}),
	)
	for _, arc := range arcs {
		line.AddSeries(arc.name, arc.points)
	}
	return line
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/psidex/worldlines/internal/globe"
	"github.com/psidex/worldlines/internal/scene"
	"github.com/psidex/worldlines/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "worldlines",
	Short: "worldlines — render city graphs on a sphere",
	Long: "worldlines projects named cities onto a sphere and connects them\n" +
		"with curved arcs, handing the scene to a pluggable renderer.",
}

func renderCmd() *cobra.Command {
	var (
		provider   string
		output     string
		citiesPath string
		nodeLimit  int
		arcSamples int
		radius     float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the city graph and render it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cities := globe.DefaultCities()
			if citiesPath != "" {
				loaded, err := globe.LoadCities(citiesPath)
				if err != nil {
					return err
				}
				cities = loaded
			}

			var chosen scene.CliProvider
			switch provider {
			case "echarts":
				chosen = scene.NewECharts()
			case "json":
				chosen = scene.NewJSONScene()
			default:
				return fmt.Errorf("unknown scene provider: %s", provider)
			}

			g := globe.New(globe.Config{
				NodeLimit:    nodeLimit,
				ArcSamples:   arcSamples,
				SphereRadius: radius,
			}, chosen)

			if err := g.Build(cities); err != nil {
				return err
			}

			g.RenderFrame()

			if err := chosen.RenderToFile(output); err != nil {
				return err
			}

			ui.Good.Printf("Rendered %d cities and %d arcs\n",
				g.Graph().NodeCount(), g.Graph().EdgeCount())
			ui.Subtle.Printf("Output written to %s.%s\n", output, extFor(provider))
			return nil
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "echarts", "scene provider (echarts, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "worldlines", "output file name, without extension")
	cmd.Flags().StringVarP(&citiesPath, "cities", "c", "", "TOML city file (default: built-in dataset)")
	cmd.Flags().IntVar(&nodeLimit, "node-limit", 0, "max nodes to draw, 0 for unlimited")
	cmd.Flags().IntVar(&arcSamples, "arc-samples", 0, "points per arc polyline (default 400)")
	cmd.Flags().Float64Var(&radius, "radius", 0, "sphere radius (default 5000)")

	return cmd
}

func extFor(provider string) string {
	if provider == "json" {
		return "json"
	}
	return "html"
}

func main() {
	rootCmd.AddCommand(renderCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

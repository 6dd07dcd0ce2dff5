package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/itsananyaaa/Pocket-Plans/models"
)

// PlotCandidateMap generates an HTML file rendering the candidate venues
// around the resolved request coordinates.
func PlotCandidateMap(centerLat, centerLon float64, candidates []models.Candidate, outPath string) {
	points := []opts.GeoData{
		{Name: "You", Value: []float64{centerLon, centerLat}},
	}
	for _, c := range candidates {
		points = append(points, opts.GeoData{
			Name:  c.Name,
			Value: []float64{c.Lon, c.Lat},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Candidate Venues",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Candidates", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	fmt.Println("Candidate map written to " + outPath)
}

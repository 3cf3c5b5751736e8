package render

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/solvkit/tsp"
)

// Sentinel errors for rendering.
var (
	// ErrNoCities indicates a nil graph or one without cities.
	ErrNoCities = errors.New("render: graph has no cities")

	// ErrInvalidTour indicates a tour index outside the graph's city range.
	ErrInvalidTour = errors.New("render: tour references unknown city")
)

// Default canvas size for Save.
const (
	defaultWidth  = 7 * vg.Inch
	defaultHeight = 5 * vg.Inch
)

// Styling knobs: light grey map edges, red tour polyline, dark city glyphs.
var (
	edgeColor = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	tourColor = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	cityColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// TourMap plots the city map and, when res.Tour is non-empty, the tour on
// top of it. A partial tour (disconnected instance) renders exactly the
// visited prefix plus its closing edge.
//
// Contract:
//   - g must hold ≥ 1 city (ErrNoCities);
//   - every res.Tour index must be a valid city (ErrInvalidTour);
//   - res.Cost is not consulted — the drawing derives from the tour alone.
//
// Complexity: O(n²) over the dense edge matrix plus O(len(tour)).
func TourMap(g *tsp.Graph, res tsp.Result) (*plot.Plot, error) {
	// --- 1. Validate inputs ---
	if g == nil || g.CityCount() == 0 {
		return nil, ErrNoCities
	}
	n := g.CityCount()
	for _, c := range res.Tour {
		if c < 0 || c >= n {
			return nil, ErrInvalidTour
		}
	}

	cities := g.Cities()

	p := plot.New()
	p.Title.Text = "City map"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	// --- 2. Existing edges as light background lines ---
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(i, j) {
				continue
			}
			seg, err := plotter.NewLine(plotter.XYs{
				{X: cities[i].X, Y: cities[i].Y},
				{X: cities[j].X, Y: cities[j].Y},
			})
			if err != nil {
				return nil, err
			}
			seg.LineStyle.Color = edgeColor
			seg.LineStyle.Width = vg.Points(0.5)
			p.Add(seg)
		}
	}

	// --- 3. Tour polyline with its implicit closing edge ---
	if len(res.Tour) > 1 {
		pts := make(plotter.XYs, 0, len(res.Tour)+1)
		for _, c := range res.Tour {
			pts = append(pts, plotter.XY{X: cities[c].X, Y: cities[c].Y})
		}
		first := cities[res.Tour[0]]
		pts = append(pts, plotter.XY{X: first.X, Y: first.Y})

		tour, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		tour.LineStyle.Color = tourColor
		tour.LineStyle.Width = vg.Points(2)
		p.Add(tour)
	}

	// --- 4. City glyphs and name labels ---
	glyphs := make(plotter.XYs, n)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	for i, c := range cities {
		glyphs[i] = plotter.XY{X: c.X, Y: c.Y}
		labels.XYs[i] = plotter.XY{X: c.X, Y: c.Y}
		labels.Labels[i] = c.Name
	}

	scatter, err := plotter.NewScatter(glyphs)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = cityColor
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	names, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(names)

	return p, nil
}

// Save writes the plot at the default canvas size; the format follows the
// file extension (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	return p.Save(defaultWidth, defaultHeight, path)
}

package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solvkit/render"
	"github.com/katalvlaran/solvkit/tsp"
)

func solvedInstance(t *testing.T) (*tsp.Graph, tsp.Result) {
	t.Helper()
	g, err := tsp.RandomInstance(6, 100, 100, 3)
	require.NoError(t, err)
	res, err := tsp.SolveNearestNeighbor(g)
	require.NoError(t, err)
	return g, res
}

func TestTourMap_Validation(t *testing.T) {
	_, err := render.TourMap(nil, tsp.Result{})
	require.ErrorIs(t, err, render.ErrNoCities)

	_, err = render.TourMap(tsp.NewGraph(), tsp.Result{})
	require.ErrorIs(t, err, render.ErrNoCities)

	g, _ := solvedInstance(t)
	_, err = render.TourMap(g, tsp.Result{Tour: []int{0, 99}})
	require.ErrorIs(t, err, render.ErrInvalidTour)
}

func TestTourMap_MapOnly(t *testing.T) {
	g, _ := solvedInstance(t)
	p, err := render.TourMap(g, tsp.Result{})
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestTourMap_SavePNG(t *testing.T) {
	g, res := solvedInstance(t)
	p, err := render.TourMap(g, res)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tour.png")
	require.NoError(t, render.Save(p, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestTourMap_SaveSVG(t *testing.T) {
	g, res := solvedInstance(t)
	p, err := render.TourMap(g, res)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tour.svg")
	require.NoError(t, render.Save(p, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/inspect"
)

// corridor returns a 3×1 grid with both interior walls open.
func corridor() *grid.Grid {
	g := grid.New(3, 1, true)
	g.Open(0, 0, grid.East)
	g.Open(1, 0, grid.East)
	return g
}

func TestAnalyze(t *testing.T) {
	withDoor := corridor()
	withDoor.Open(0, 0, grid.West)

	cases := []struct {
		name string
		g    *grid.Grid
		want inspect.Report
	}{
		{
			name: "closed 2x2",
			g:    grid.New(2, 2, true),
			want: inspect.Report{Width: 2, Height: 2, Components: 4, Acyclic: true},
		},
		{
			name: "open 2x2 has a loop",
			g:    grid.New(2, 2, false),
			want: inspect.Report{Width: 2, Height: 2, Passages: 4, Components: 1, Connected: true, Openings: 8},
		},
		{
			name: "corridor",
			g:    corridor(),
			want: inspect.Report{Width: 3, Height: 1, Passages: 2, Components: 1, Connected: true, Acyclic: true, DeadEnds: 2},
		},
		{
			name: "corridor with door",
			g:    withDoor,
			want: inspect.Report{Width: 3, Height: 1, Passages: 2, Components: 1, Connected: true, Acyclic: true, DeadEnds: 1, Openings: 1},
		},
		{
			name: "single cell",
			g:    grid.New(1, 1, true),
			want: inspect.Report{Width: 1, Height: 1, Components: 1, Connected: true, Acyclic: true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inspect.Analyze(tc.g))
		})
	}
}

func TestReport_Perfect(t *testing.T) {
	assert.True(t, inspect.Analyze(corridor()).Perfect())
	assert.True(t, inspect.Analyze(grid.New(1, 1, true)).Perfect())
	assert.False(t, inspect.Analyze(grid.New(2, 2, true)).Perfect())
	assert.False(t, inspect.Analyze(grid.New(2, 2, false)).Perfect())
}

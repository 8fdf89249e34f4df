package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFood_RelocateStaysOnGrid(t *testing.T) {
	grid := Grid{Cols: 4, Rows: 3}
	f := NewFood(grid, Color{R: 255, G: 128}, rand.New(rand.NewSource(7)))
	seen := map[Point]bool{}
	for i := 0; i < 500; i++ {
		p := f.Relocate()
		require.True(t, grid.Contains(p), "food off grid at %s", p)
		require.Equal(t, p, f.Position())
		seen[p] = true
	}
	require.Len(t, seen, 12)
}

func TestFood_SameSeedSamePositions(t *testing.T) {
	grid := Grid{Cols: 30, Rows: 30}
	a := NewFood(grid, Color{}, rand.New(rand.NewSource(42)))
	b := NewFood(grid, Color{}, rand.New(rand.NewSource(42)))
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Relocate(), b.Relocate())
	}
}

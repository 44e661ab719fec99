package model_test

import (
	"testing"

	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestGridNext(t *testing.T) {
	grid := model.Grid{Columns: 4, Count: 12}

	require.Equal(t, 11, grid.Next(0, input.Left))
	require.Equal(t, 0, grid.Next(11, input.Right))
	require.Equal(t, 5, grid.Next(4, input.Right))
	require.Equal(t, 1, grid.Next(5, input.Up))
	require.Equal(t, 1, grid.Next(1, input.Up))
	require.Equal(t, 9, grid.Next(5, input.Down))
	require.Equal(t, 9, grid.Next(9, input.Down))
	require.Equal(t, 0, grid.Next(42, input.Down))
	require.Equal(t, 0, model.Grid{}.Next(3, input.Right))
}

func TestGridShortLastRow(t *testing.T) {
	grid := model.Grid{Columns: 5, Count: 12}

	require.Equal(t, 2, grid.Row(11))
	require.Equal(t, 1, grid.Column(11))
	require.Equal(t, 11, grid.Next(6, input.Down))
	require.Equal(t, 8, grid.Next(8, input.Down))
}

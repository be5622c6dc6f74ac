package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend"
)

func TestOptionsFromConfig(t *testing.T) {
	// Given: the default window settings
	conf := config.Window{
		Title: "Tic Tac Toe", Width: 640, Height: 480, TPS: 60,
		TopMargin: 40, LeftMargin: 100, TileSize: 120,
	}

	// When: they are turned into options
	opts := OptionsFromConfig(conf)

	// Then: the grid matches the default layout
	assert.Equal(t, frontend.DefaultGrid(), opts.Grid)
	assert.Equal(t, 60, opts.TPS)

	pos, ok := opts.Grid.CellAt(340, 380)
	assert.True(t, ok)
	assert.Equal(t, entity.Pos{Row: 2, Column: 2}, pos)
}

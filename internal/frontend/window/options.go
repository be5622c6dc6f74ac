package window

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend"
)

type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Grid   frontend.Grid
}

func OptionsFromConfig(conf config.Window) Options {
	return Options{
		Title:  conf.Title,
		Width:  conf.Width,
		Height: conf.Height,
		TPS:    conf.TPS,
		Grid: frontend.Grid{
			Top:    conf.TopMargin,
			Left:   conf.LeftMargin,
			Width:  conf.TileSize,
			Height: conf.TileSize,
		},
	}
}

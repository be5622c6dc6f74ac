package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidWindow   = errors.New("invalid window settings")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile    string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	Frontend   string `yaml:"frontend" env:"TICTACTOE_FRONTEND" env-default:"terminal"`
	RandomSeed int64  `yaml:"random-seed" env:"TICTACTOE_RANDOM_SEED" env-default:"0"`
	Window     Window `yaml:"window"`
}

// Window - settings of the graphical front end.
type Window struct {
	Title  string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic Tac Toe"`
	Width  int    `yaml:"width" env:"TICTACTOE_WINDOW_WIDTH" env-default:"640"`
	Height int    `yaml:"height" env:"TICTACTOE_WINDOW_HEIGHT" env-default:"480"`
	TPS    int    `yaml:"tps" env:"TICTACTOE_WINDOW_TPS" env-default:"60"`

	TopMargin  int `yaml:"top-margin" env:"TICTACTOE_WINDOW_TOP_MARGIN" env-default:"40"`
	LeftMargin int `yaml:"left-margin" env:"TICTACTOE_WINDOW_LEFT_MARGIN" env-default:"100"`
	TileSize   int `yaml:"tile-size" env:"TICTACTOE_WINDOW_TILE_SIZE" env-default:"120"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the
// file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	switch that.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, that.Frontend)
	}

	window := that.Window
	if window.TileSize <= 0 || window.TPS <= 0 ||
		window.LeftMargin+entity.BoardSize*window.TileSize > window.Width || window.TopMargin+entity.BoardSize*window.TileSize > window.Height {
		return fmt.Errorf("%w: board does not fit into %dx%d", ErrInvalidWindow, window.Width, window.Height)
	}

	return nil
}

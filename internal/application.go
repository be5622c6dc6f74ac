package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend/terminal"
	"github.com/rocketscienceinc/tictactoe-local/internal/frontend/window"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
)

type frontend interface {
	Events() <-chan entity.InputEvent
	Render(board entity.Board, status entity.EndStatus)
	AskPlayAgain(ctx context.Context, status entity.EndStatus) (bool, error)
	Run(ctx context.Context) error
	Stop()
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	fe, err := newFrontend(logger, conf)
	if err != nil {
		return fmt.Errorf("could not start %s frontend: %w", conf.Frontend, err)
	}

	seed := conf.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.Info("Starting game", "frontend", conf.Frontend, "seed", seed)

	bot := service.NewBotService(newRandom(seed))
	gameManager := usecase.NewGameManager(logger, bot, fe, fe)

	// run the session, the frontend keeps the main goroutine
	sessionErrCh := make(chan error, 1)
	go func() {
		defer fe.Stop()
		sessionErrCh <- gameManager.Run(ctx, fe.Events())
	}()

	feErr := fe.Run(ctx)
	cancel()

	sessionErr := <-sessionErrCh

	if feErr != nil {
		feErr = fmt.Errorf("frontend error: %w", feErr)
	}

	if sessionErr != nil {
		sessionErr = fmt.Errorf("game session error: %w", sessionErr)
	}

	log.Info("Game closed")

	return errors.Join(feErr, sessionErr)
}

func newFrontend(logger *slog.Logger, conf *config.Config) (frontend, error) {
	switch conf.Frontend {
	case config.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("could not open terminal: %w", err)
		}

		fe, err := terminal.New(logger, screen)
		if err != nil {
			return nil, err
		}

		return fe, nil
	case config.FrontendWindow:
		fe, err := window.New(logger, window.OptionsFromConfig(conf.Window))
		if err != nil {
			return nil, err
		}

		return fe, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, conf.Frontend)
	}
}

func newRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint: gosec // picks game moves, not secrets
}

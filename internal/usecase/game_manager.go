package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// Phase - where the round currently is.
type Phase uint8

const (
	AwaitingPlayerMove Phase = iota
	AwaitingComputerMove
	RoundOver
	Terminated
)

func (that Phase) String() string {
	switch that {
	case AwaitingPlayerMove:
		return "awaiting_player_move"
	case AwaitingComputerMove:
		return "awaiting_computer_move"
	case RoundOver:
		return "round_over"
	default:
		return "terminated"
	}
}

type botService interface {
	MakeTurn(state *entity.GameState) (service.Move, error)
}

type renderer interface {
	Render(board entity.Board, status entity.EndStatus)
}

type dialog interface {
	AskPlayAgain(ctx context.Context, status entity.EndStatus) (bool, error)
}

// GameManager - owns the round state and drives it one tick at a time. Not safe for
// concurrent use: a single goroutine runs it.
type GameManager struct {
	logger *slog.Logger

	bot      botService
	renderer renderer
	dialog   dialog

	state   *entity.GameState
	input   entity.PendingInput
	phase   Phase
	roundID string
}

func NewGameManager(logger *slog.Logger, bot botService, renderer renderer, dialog dialog) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		bot:      bot,
		renderer: renderer,
		dialog:   dialog,

		state:   entity.NewGameState(),
		phase:   AwaitingPlayerMove,
		roundID: pkg.GenerateRoundID(),
	}
}

// Run - blocks for an event, drains every event already queued into one tick and
// processes it, until the session terminates.
func (that *GameManager) Run(ctx context.Context, events <-chan entity.InputEvent) error {
	that.Start()

	for that.Running() {
		var closed bool

		select {
		case <-ctx.Done():
			that.terminate("context canceled")
			return nil
		case event, ok := <-events:
			if !ok {
				that.terminate("input closed")
				return nil
			}

			that.HandleEvent(event)
			closed = that.drain(events)
		}

		if err := that.Tick(ctx); err != nil {
			return fmt.Errorf("failed to process tick: %w", err)
		}

		if closed {
			that.terminate("input closed")
		}
	}

	return nil
}

// drain - reports whether the input was closed.
func (that *GameManager) drain(events <-chan entity.InputEvent) bool {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return true
			}

			that.HandleEvent(event)
		default:
			return false
		}
	}
}

// Start - shows the initial board.
func (that *GameManager) Start() {
	that.logger.Info("round started", "roundID", that.roundID)
	that.render()
}

// HandleEvent - records one input event for the current tick.
func (that *GameManager) HandleEvent(event entity.InputEvent) {
	switch event.Kind {
	case entity.InputQuit:
		that.terminate("quit requested")
	case entity.InputSelect:
		if that.phase == AwaitingPlayerMove {
			that.input.Press(event.Pos)
		}
	}
}

// Tick - applies at most one player move, lets the computer answer and closes the round
// when it is over.
func (that *GameManager) Tick(ctx context.Context) error {
	log := that.logger.With("method", "Tick", "roundID", that.roundID)

	if !that.Running() || that.phase != AwaitingPlayerMove {
		that.input.Clear()
		return nil
	}

	pos, ok := that.input.Take()
	if !ok {
		return nil
	}

	if !tictactoe.ApplyPlayerMove(that.state, pos) {
		log.Debug("cell is already occupied", "cell", pos.String())
		return nil
	}

	log.Debug("player made a turn", "cell", pos.String(), "status", that.state.EndStatus.String())

	if !that.state.IsFinished() {
		that.phase = AwaitingComputerMove

		move, err := that.bot.MakeTurn(that.state)
		if err != nil {
			that.terminate("computer turn failed")
			return fmt.Errorf("failed to make computer turn: %w", err)
		}

		log.Debug("computer made a turn", "cell", move.Pos.String(), "rule", move.Rule.String(), "status", that.state.EndStatus.String())
	}

	that.render()

	if that.state.IsFinished() {
		return that.finishRound(ctx)
	}

	that.phase = AwaitingPlayerMove

	return nil
}

func (that *GameManager) finishRound(ctx context.Context) error {
	log := that.logger.With("method", "finishRound", "roundID", that.roundID)

	that.phase = RoundOver
	log.Info("round over", "status", that.state.EndStatus.String())

	again, err := that.dialog.AskPlayAgain(ctx, that.state.EndStatus)
	if errors.Is(err, context.Canceled) {
		that.terminate("context canceled")
		return nil
	}

	if err != nil {
		that.terminate("dialog failed")
		return fmt.Errorf("failed to ask to play again: %w", err)
	}

	if !again {
		that.terminate("player declined another round")
		return nil
	}

	that.startRound()

	return nil
}

func (that *GameManager) startRound() {
	that.state.Reset()
	that.input.Clear()
	that.phase = AwaitingPlayerMove
	that.roundID = pkg.GenerateRoundID()

	that.Start()
}

func (that *GameManager) terminate(reason string) {
	if that.phase == Terminated {
		return
	}

	that.state.Running = false
	that.phase = Terminated
	that.input.Clear()

	that.logger.Info("session terminated", "roundID", that.roundID, "reason", reason)
}

func (that *GameManager) render() {
	that.renderer.Render(that.state.Board, that.state.EndStatus)
}

func (that *GameManager) Running() bool {
	return that.state.Running
}

func (that *GameManager) Phase() Phase {
	return that.phase
}

func (that *GameManager) RoundID() string {
	return that.roundID
}

// State - a copy of the current round state.
func (that *GameManager) State() entity.GameState {
	return *that.state
}

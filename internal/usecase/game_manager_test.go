package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-local/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

var (
	errDialogBroken = errors.New("dialog broken")
	errBotBroken    = errors.New("bot broken")
)

// scriptedBot - a bot mock that takes the given cells in order.
func scriptedBot(t *testing.T, cells ...entity.Pos) *mockedUseCase.MockbotService {
	t.Helper()

	bot := mockedUseCase.NewMockbotService(t)
	next := 0

	if len(cells) == 0 {
		return bot
	}

	bot.EXPECT().
		MakeTurn(mock.AnythingOfType("*entity.GameState")).
		RunAndReturn(func(state *entity.GameState) (service.Move, error) {
			pos := cells[next]
			next++

			state.Place(pos, entity.ComputerOwned)
			tictactoe.RecomputeStatus(state)

			return service.Move{Pos: pos, Rule: service.RuleRandom}, nil
		}).
		Times(len(cells))

	return bot
}

func at(row, column int) entity.Pos {
	return entity.Pos{Row: row, Column: column}
}

func play(ctx context.Context, t *testing.T, manager *GameManager, cells ...entity.Pos) {
	t.Helper()

	for _, pos := range cells {
		manager.HandleEvent(entity.SelectEvent(pos))
		require.NoError(t, manager.Tick(ctx))
	}
}

func TestGameManager_Tick(t *testing.T) {
	t.Run("Player move is answered by the computer", func(t *testing.T) {
		// Given: a new session
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 1))

		renderer.EXPECT().Render(entity.Board{}, entity.InProgress).Return().Once()

		expectedBoard := entity.Board{}
		expectedBoard[0][0] = entity.PlayerOwned
		expectedBoard[1][1] = entity.ComputerOwned
		renderer.EXPECT().Render(expectedBoard, entity.InProgress).Return().Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)
		manager.Start()

		// When: the player selects (0,0)
		play(ctx, t, manager, at(0, 0))

		// Then: both marks are on the board and the player is to move again
		state := manager.State()
		assert.Equal(t, expectedBoard, state.Board)
		assert.Equal(t, 7, state.FreeCount)
		assert.Equal(t, AwaitingPlayerMove, manager.Phase())
		assert.True(t, manager.Running())
	})

	t.Run("Occupied cell is rejected without a computer move", func(t *testing.T) {
		// Given: a session where the computer owns the center
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 1))

		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)
		play(ctx, t, manager, at(0, 0))
		before := manager.State()

		// When: the player selects the center
		play(ctx, t, manager, entity.Center)

		// Then: nothing changes and nothing is rendered
		assert.Equal(t, before, manager.State())
		assert.Equal(t, AwaitingPlayerMove, manager.Phase())
	})

	t.Run("Tick without input does nothing", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger, scriptedBot(t), mockedUseCase.NewMockrenderer(t), mockedUseCase.NewMockdialog(t))

		require.NoError(t, manager.Tick(ctx))

		assert.Equal(t, 9, manager.State().FreeCount)
	})

	t.Run("Only the earliest cell of a tick is played", func(t *testing.T) {
		// Given: a new session
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		bot := scriptedBot(t, at(0, 0))
		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Once()

		manager := NewGameManager(st.Logger, bot, renderer, mockedUseCase.NewMockdialog(t))

		// When: three cells are selected within one tick
		manager.HandleEvent(entity.SelectEvent(at(2, 2)))
		manager.HandleEvent(entity.SelectEvent(at(1, 0)))
		manager.HandleEvent(entity.SelectEvent(at(0, 1)))
		require.NoError(t, manager.Tick(ctx))

		// Then: only (0,1) lands
		board := manager.State().Board
		assert.Equal(t, entity.PlayerOwned, board.At(at(0, 1)))
		assert.Equal(t, entity.Empty, board.At(at(1, 0)))
		assert.Equal(t, entity.Empty, board.At(at(2, 2)))
		assert.Equal(t, 1, board.Count(entity.PlayerOwned))
	})
}

func TestGameManager_RoundOver(t *testing.T) {
	t.Run("Player wins and chooses to play again", func(t *testing.T) {
		// Given: a session where the computer plays the middle row
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 0), at(1, 1))

		renderer.EXPECT().Render(entity.Board{}, entity.InProgress).Return().Twice()
		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Twice()
		renderer.EXPECT().Render(mock.Anything, entity.PlayerWins).Return().Once()
		dialog.EXPECT().AskPlayAgain(ctx, entity.PlayerWins).Return(true, nil).Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)
		manager.Start()
		firstRound := manager.RoundID()

		// When: the player completes the top row
		play(ctx, t, manager, at(0, 0), at(0, 1), at(0, 2))

		// Then: a fresh round starts
		state := manager.State()
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Equal(t, 9, state.FreeCount)
		assert.Equal(t, entity.InProgress, state.EndStatus)
		assert.True(t, state.Running)
		assert.Equal(t, AwaitingPlayerMove, manager.Phase())
		assert.NotEqual(t, firstRound, manager.RoundID())
	})

	t.Run("Draw and the player declines", func(t *testing.T) {
		// Given: a session scripted to a full board without a line
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 1), at(0, 1), at(1, 2), at(2, 0))

		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Times(4)
		renderer.EXPECT().Render(mock.Anything, entity.Draw).Return().Once()
		dialog.EXPECT().AskPlayAgain(ctx, entity.Draw).Return(false, nil).Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)

		// When: the player fills the remaining cells
		play(ctx, t, manager, at(0, 0), at(0, 2), at(2, 1), at(1, 0), at(2, 2))

		// Then: the round is a draw and the session terminates
		state := manager.State()
		assert.Equal(t, entity.Draw, state.EndStatus)
		assert.Equal(t, 0, state.FreeCount)
		assert.False(t, manager.Running())
		assert.Equal(t, Terminated, manager.Phase())
	})

	t.Run("Computer wins against the real rule chain", func(t *testing.T) {
		// Given: a session with the real bot
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)

		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Times(4)
		renderer.EXPECT().Render(mock.Anything, entity.ComputerWins).Return().Once()
		dialog.EXPECT().AskPlayAgain(ctx, entity.ComputerWins).Return(false, nil).Once()

		manager := NewGameManager(st.Logger, service.NewBotService(st.Random), renderer, dialog)
		manager.Start()

		// When: the player leaves the anti diagonal open
		play(ctx, t, manager, at(0, 1), at(2, 2), at(1, 2), at(1, 0))

		// Then: the computer completes it
		expected := entity.Board{
			{entity.ComputerOwned, entity.PlayerOwned, entity.ComputerOwned},
			{entity.PlayerOwned, entity.ComputerOwned, entity.PlayerOwned},
			{entity.ComputerOwned, entity.Empty, entity.PlayerOwned},
		}
		state := manager.State()
		assert.Equal(t, expected, state.Board)
		assert.Equal(t, entity.ComputerWins, state.EndStatus)
		assert.Equal(t, 1, state.FreeCount)
		assert.Equal(t, Terminated, manager.Phase())
	})

	t.Run("Dialog failure terminates with an error", func(t *testing.T) {
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 0), at(1, 1))

		renderer.EXPECT().Render(mock.Anything, mock.Anything).Return().Times(3)
		dialog.EXPECT().AskPlayAgain(ctx, entity.PlayerWins).Return(false, errDialogBroken).Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)
		play(ctx, t, manager, at(0, 0), at(0, 1))

		manager.HandleEvent(entity.SelectEvent(at(0, 2)))
		err := manager.Tick(ctx)

		require.ErrorIs(t, err, errDialogBroken)
		assert.False(t, manager.Running())
	})

	t.Run("Canceled dialog terminates quietly", func(t *testing.T) {
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		dialog := mockedUseCase.NewMockdialog(t)
		bot := scriptedBot(t, at(1, 0), at(1, 1))

		renderer.EXPECT().Render(mock.Anything, mock.Anything).Return().Times(3)
		dialog.EXPECT().AskPlayAgain(ctx, entity.PlayerWins).Return(false, context.Canceled).Once()

		manager := NewGameManager(st.Logger, bot, renderer, dialog)
		play(ctx, t, manager, at(0, 0), at(0, 1), at(0, 2))

		assert.Equal(t, Terminated, manager.Phase())
	})
}

func TestGameManager_ComputerFailure(t *testing.T) {
	// Given: a bot that fails
	ctx, st := suite.New(t)
	bot := mockedUseCase.NewMockbotService(t)
	bot.EXPECT().
		MakeTurn(mock.AnythingOfType("*entity.GameState")).
		Return(service.Move{}, errBotBroken).
		Once()

	manager := NewGameManager(st.Logger, bot, mockedUseCase.NewMockrenderer(t), mockedUseCase.NewMockdialog(t))

	// When: the player moves
	manager.HandleEvent(entity.SelectEvent(at(0, 0)))
	err := manager.Tick(ctx)

	// Then: the error is surfaced and the session stops
	require.ErrorIs(t, err, errBotBroken)
	assert.Equal(t, Terminated, manager.Phase())
}

func TestGameManager_Quit(t *testing.T) {
	// Given: a running session with a pending selection
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger, scriptedBot(t), mockedUseCase.NewMockrenderer(t), mockedUseCase.NewMockdialog(t))
	manager.HandleEvent(entity.SelectEvent(at(0, 0)))

	// When: quit is requested in the same tick
	manager.HandleEvent(entity.QuitEvent())
	require.NoError(t, manager.Tick(ctx))

	// Then: the session is terminated and the selection is dropped
	assert.False(t, manager.Running())
	assert.Equal(t, Terminated, manager.Phase())
	assert.Equal(t, 9, manager.State().FreeCount)

	// And: terminated is absorbing
	manager.HandleEvent(entity.SelectEvent(at(1, 1)))
	require.NoError(t, manager.Tick(ctx))
	assert.Equal(t, 9, manager.State().FreeCount)
}

func TestGameManager_Run(t *testing.T) {
	t.Run("Queued events form one tick and a closed input ends the session", func(t *testing.T) {
		// Given: two selections queued before the loop starts
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		bot := scriptedBot(t, at(0, 0))
		renderer.EXPECT().Render(mock.Anything, entity.InProgress).Return().Twice()

		events := make(chan entity.InputEvent, 2)
		events <- entity.SelectEvent(at(2, 2))
		events <- entity.SelectEvent(at(0, 1))
		close(events)

		manager := NewGameManager(st.Logger, bot, renderer, mockedUseCase.NewMockdialog(t))

		// When: the session runs
		err := manager.Run(ctx, events)

		// Then: only the earliest cell was played before the input closed
		require.NoError(t, err)
		board := manager.State().Board
		assert.Equal(t, entity.PlayerOwned, board.At(at(0, 1)))
		assert.Equal(t, entity.Empty, board.At(at(2, 2)))
		assert.Equal(t, Terminated, manager.Phase())
	})

	t.Run("Quit event stops the loop", func(t *testing.T) {
		ctx, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		renderer.EXPECT().Render(entity.Board{}, entity.InProgress).Return().Once()

		events := make(chan entity.InputEvent, 1)
		events <- entity.QuitEvent()

		manager := NewGameManager(st.Logger, scriptedBot(t), renderer, mockedUseCase.NewMockdialog(t))

		require.NoError(t, manager.Run(ctx, events))
		assert.False(t, manager.Running())
	})

	t.Run("Canceled context stops the loop", func(t *testing.T) {
		_, st := suite.New(t)
		renderer := mockedUseCase.NewMockrenderer(t)
		renderer.EXPECT().Render(entity.Board{}, entity.InProgress).Return().Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		manager := NewGameManager(st.Logger, scriptedBot(t), renderer, mockedUseCase.NewMockdialog(t))

		require.NoError(t, manager.Run(ctx, make(chan entity.InputEvent)))
		assert.Equal(t, Terminated, manager.Phase())
	})
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "awaiting_player_move", AwaitingPlayerMove.String())
	assert.Equal(t, "awaiting_computer_move", AwaitingComputerMove.String())
	assert.Equal(t, "round_over", RoundOver.String())
	assert.Equal(t, "terminated", Terminated.String())
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize
)

// Cell - value of a single board position.
type Cell uint8

const (
	Empty Cell = iota
	ComputerOwned
	PlayerOwned
)

func (that Cell) String() string {
	switch that {
	case ComputerOwned:
		return "computer"
	case PlayerOwned:
		return "player"
	default:
		return "empty"
	}
}

// EndStatus - derived round outcome, recomputed after every placement.
type EndStatus uint8

const (
	InProgress EndStatus = iota
	Draw
	ComputerWins
	PlayerWins
)

func (that EndStatus) String() string {
	switch that {
	case Draw:
		return "draw"
	case ComputerWins:
		return "computer_wins"
	case PlayerWins:
		return "player_wins"
	default:
		return "in_progress"
	}
}

func (that EndStatus) IsFinished() bool {
	return that != InProgress
}

// Pos - board coordinate, row and column in [0, BoardSize).
type Pos struct {
	Row    int
	Column int
}

func (that Pos) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Column >= 0 && that.Column < BoardSize
}

func (that Pos) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Column)
}

var (
	Center  = Pos{Row: 1, Column: 1}
	Corners = [4]Pos{
		{Row: 0, Column: 0},
		{Row: 0, Column: 2},
		{Row: 2, Column: 2},
		{Row: 2, Column: 0},
	}
)

// Board - fixed 3x3 grid. Accessors panic on out of range coordinates.
type Board [BoardSize][BoardSize]Cell

func (that *Board) At(pos Pos) Cell {
	mustBeValid(pos)
	return that[pos.Row][pos.Column]
}

func (that *Board) Set(pos Pos, cell Cell) {
	mustBeValid(pos)
	that[pos.Row][pos.Column] = cell
}

func (that *Board) IsEmpty(pos Pos) bool {
	return that.At(pos) == Empty
}

func (that *Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, value := range row {
			if value == cell {
				count++
			}
		}
	}

	return count
}

// EmptyCells - returns free positions in row-major order.
func (that *Board) EmptyCells() []Pos {
	cells := make([]Pos, 0, CellsCount)
	for row := range BoardSize {
		for column := range BoardSize {
			if that[row][column] == Empty {
				cells = append(cells, Pos{Row: row, Column: column})
			}
		}
	}

	return cells
}

func mustBeValid(pos Pos) {
	if !pos.Valid() {
		panic(fmt.Errorf("%w: %s", apperror.ErrInvalidCell, pos))
	}
}

type GameState struct {
	Board     Board
	FreeCount int
	EndStatus EndStatus
	Running   bool
}

func NewGameState() *GameState {
	state := &GameState{}
	state.Reset()

	return state
}

// Reset - reinitializes every field for a fresh round.
func (that *GameState) Reset() {
	*that = GameState{
		FreeCount: CellsCount,
		EndStatus: InProgress,
		Running:   true,
	}
}

// Place - puts a mark into an empty cell and accounts for it. The caller recomputes the status.
func (that *GameState) Place(pos Pos, cell Cell) {
	that.Board.Set(pos, cell)
	that.FreeCount--
}

func (that *GameState) IsFinished() bool {
	return that.EndStatus.IsFinished()
}

// IsFirstComputerMove - true while at most one mark is on the board.
func (that *GameState) IsFirstComputerMove() bool {
	return that.FreeCount >= CellsCount-1
}

package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Line - three board positions forming a row, column or diagonal.
type Line [3]entity.Pos

// Lines - the 8 winning triples in scan order: rows, columns, main diagonal, anti diagonal.
// The anti diagonal is listed by ascending column.
var Lines = [8]Line{
	{{Row: 0, Column: 0}, {Row: 0, Column: 1}, {Row: 0, Column: 2}},
	{{Row: 1, Column: 0}, {Row: 1, Column: 1}, {Row: 1, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 2, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 0}, {Row: 2, Column: 0}},
	{{Row: 0, Column: 1}, {Row: 1, Column: 1}, {Row: 2, Column: 1}},
	{{Row: 0, Column: 2}, {Row: 1, Column: 2}, {Row: 2, Column: 2}},
	{{Row: 0, Column: 0}, {Row: 1, Column: 1}, {Row: 2, Column: 2}},
	{{Row: 2, Column: 0}, {Row: 1, Column: 1}, {Row: 0, Column: 2}},
}

// ApplyPlayerMove - places the player's mark. Returns false when the cell is occupied.
// Calling it on a finished round or with a cell out of range is a programming error and panics.
func ApplyPlayerMove(state *entity.GameState, pos entity.Pos) bool {
	if state.IsFinished() {
		panic(fmt.Errorf("%w: player move %s", apperror.ErrGameFinished, pos))
	}

	if !state.Board.IsEmpty(pos) {
		return false
	}

	state.Place(pos, entity.PlayerOwned)
	RecomputeStatus(state)

	return true
}

// RecomputeStatus - derives the end status from the board.
func RecomputeStatus(state *entity.GameState) {
	state.EndStatus = checkGameStatus(&state.Board)
}

func checkGameStatus(board *entity.Board) entity.EndStatus {
	for _, line := range Lines {
		a, b, c := board.At(line[0]), board.At(line[1]), board.At(line[2])
		if a != entity.Empty && a == b && b == c {
			return winnerStatus(a)
		}
	}

	// the round goes on while any cell is free
	for _, row := range board {
		for _, cell := range row {
			if cell == entity.Empty {
				return entity.InProgress
			}
		}
	}

	return entity.Draw
}

func winnerStatus(cell entity.Cell) entity.EndStatus {
	if cell == entity.ComputerOwned {
		return entity.ComputerWins
	}

	return entity.PlayerWins
}

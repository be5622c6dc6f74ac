package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

// Rule - the heuristic that produced the computer's move.
type Rule uint8

const (
	RuleNone Rule = iota
	RuleWin
	RuleBlock
	RuleTrap
	RuleCornerResponse
	RuleCornerOpening
	RuleRandom
)

func (that Rule) String() string {
	switch that {
	case RuleWin:
		return "win"
	case RuleBlock:
		return "block"
	case RuleTrap:
		return "trap"
	case RuleCornerResponse:
		return "corner_response"
	case RuleCornerOpening:
		return "corner_opening"
	case RuleRandom:
		return "random"
	default:
		return "none"
	}
}

// Move - the cell the computer took and why.
type Move struct {
	Pos  entity.Pos
	Rule Rule
}

type BotService interface {
	MakeTurn(state *entity.GameState) (Move, error)
}

type randomSource interface {
	Intn(n int) int
}

type botService struct {
	random randomSource
}

func NewBotService(random randomSource) BotService {
	return &botService{
		random: random,
	}
}

// MakeTurn - runs the rule chain, places one computer mark and recomputes the status.
func (that *botService) MakeTurn(state *entity.GameState) (Move, error) {
	if state.IsFinished() {
		return Move{}, apperror.ErrGameFinished
	}

	if state.FreeCount == 0 {
		return Move{}, apperror.ErrNoFreeCells
	}

	move, ok := that.chooseMove(state)
	if !ok {
		return Move{}, fmt.Errorf("%w: free count %d", apperror.ErrNoFreeCells, state.FreeCount)
	}

	state.Place(move.Pos, entity.ComputerOwned)
	tictactoe.RecomputeStatus(state)

	return move, nil
}

// chooseMove - fixed priority chain, the first rule that finds a cell wins.
func (that *botService) chooseMove(state *entity.GameState) (Move, bool) {
	board := &state.Board

	if pos, ok := findLineMove(board, entity.ComputerOwned); ok {
		return Move{Pos: pos, Rule: RuleWin}, true
	}

	if pos, ok := findLineMove(board, entity.PlayerOwned); ok {
		return Move{Pos: pos, Rule: RuleBlock}, true
	}

	if pos, ok := findTrapMove(board); ok {
		return Move{Pos: pos, Rule: RuleTrap}, true
	}

	if pos, ok := findCornerResponse(state); ok {
		return Move{Pos: pos, Rule: RuleCornerResponse}, true
	}

	if pos, ok := findCornerOpening(state); ok {
		return Move{Pos: pos, Rule: RuleCornerOpening}, true
	}

	if pos, ok := that.findRandomMove(state); ok {
		return Move{Pos: pos, Rule: RuleRandom}, true
	}

	return Move{}, false
}

// linePairs - which two cells of a line must match, the third is the target.
var linePairs = [3][2]int{{0, 1}, {1, 2}, {0, 2}}

// findLineMove - a line holding two marks of the given owner and one empty cell.
func findLineMove(board *entity.Board, owner entity.Cell) (entity.Pos, bool) {
	for _, line := range tictactoe.Lines {
		for _, pair := range linePairs {
			target := line[3-pair[0]-pair[1]]
			if board.At(line[pair[0]]) == owner &&
				board.At(line[pair[1]]) == owner &&
				board.IsEmpty(target) {
				return target, true
			}
		}
	}

	return entity.Pos{}, false
}

// findCornerResponse - answers a player's corner opening with the center.
func findCornerResponse(state *entity.GameState) (entity.Pos, bool) {
	if !state.IsFirstComputerMove() || !state.Board.IsEmpty(entity.Center) {
		return entity.Pos{}, false
	}

	for _, corner := range entity.Corners {
		if state.Board.At(corner) == entity.PlayerOwned {
			return entity.Center, true
		}
	}

	return entity.Pos{}, false
}

// findCornerOpening - claims a corner on the computer's first move.
func findCornerOpening(state *entity.GameState) (entity.Pos, bool) {
	if !state.IsFirstComputerMove() {
		return entity.Pos{}, false
	}

	for _, corner := range entity.Corners {
		if state.Board.IsEmpty(corner) {
			return corner, true
		}
	}

	return entity.Pos{}, false
}

// findRandomMove - the n-th free cell in row-major order, n drawn below the free count.
func (that *botService) findRandomMove(state *entity.GameState) (entity.Pos, bool) {
	free := state.Board.EmptyCells()
	if len(free) == 0 || state.FreeCount <= 0 {
		return entity.Pos{}, false
	}

	index := that.random.Intn(state.FreeCount)
	if index >= len(free) {
		return entity.Pos{}, false
	}

	return free[index], true
}

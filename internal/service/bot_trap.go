package service

import (
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// trapCase - if threat holds one owner mark and one empty cell, and both open cells are
// empty, the computer takes open[0].
type trapCase struct {
	threat [2]entity.Pos
	open   [2]entity.Pos
}

// findTrapMove - fork setups. Computer pivots are scanned first, then player pivots so that
// the same geometry blocks the player's fork.
func findTrapMove(board *entity.Board) (entity.Pos, bool) {
	for _, owner := range [2]entity.Cell{entity.ComputerOwned, entity.PlayerOwned} {
		for row := range entity.BoardSize {
			for column := range entity.BoardSize {
				pivot := entity.Pos{Row: row, Column: column}

				var (
					pos entity.Pos
					ok  bool
				)
				if row != 2 && column != 2 {
					pos, ok = findPivotTrap(board, owner, pivot)
				} else {
					pos, ok = findEdgePivotTrap(board, owner, pivot)
				}

				if ok {
					return pos, true
				}
			}
		}
	}

	return entity.Pos{}, false
}

// findEdgePivotTrap - pivots on the last row or column have no case analysis and never
// produce a move.
func findEdgePivotTrap(_ *entity.Board, _ entity.Cell, _ entity.Pos) (entity.Pos, bool) {
	return entity.Pos{}, false
}

func findPivotTrap(board *entity.Board, owner entity.Cell, pivot entity.Pos) (entity.Pos, bool) {
	if board.At(pivot) != owner {
		return entity.Pos{}, false
	}

	rowB, rowC := otherTwo(pivot.Row)
	columnB, columnC := otherTwo(pivot.Column)

	rowPair := [2]entity.Pos{{Row: pivot.Row, Column: columnB}, {Row: pivot.Row, Column: columnC}}
	columnPair := [2]entity.Pos{{Row: rowB, Column: pivot.Column}, {Row: rowC, Column: pivot.Column}}
	crossPair := [2]entity.Pos{{Row: rowB, Column: columnB}, {Row: rowC, Column: columnC}}

	cases := [6]trapCase{
		{threat: rowPair, open: columnPair},
		{threat: columnPair, open: rowPair},
		{threat: rowPair, open: crossPair},
		{threat: crossPair, open: rowPair},
		{threat: columnPair, open: crossPair},
		{threat: crossPair, open: columnPair},
	}

	for _, tc := range cases {
		if halfOwned(board, owner, tc.threat) && board.IsEmpty(tc.open[0]) && board.IsEmpty(tc.open[1]) {
			return tc.open[0], true
		}
	}

	return entity.Pos{}, false
}

// halfOwned - one cell of the pair belongs to owner, the other is empty.
func halfOwned(board *entity.Board, owner entity.Cell, pair [2]entity.Pos) bool {
	a, b := board.At(pair[0]), board.At(pair[1])

	return (a == owner && b == entity.Empty) || (b == owner && a == entity.Empty)
}

// otherTwo - the two indexes different from index, ascending.
func otherTwo(index int) (int, int) {
	switch index {
	case 1:
		return 0, 2
	case 2:
		return 0, 1
	default:
		return 1, 2
	}
}

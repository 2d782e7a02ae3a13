package wincheck

import (
	"log/slog"

	"github.com/mcoot/connectn/internal/model"
)

// Axis names the line family a run was found on
type Axis string

const (
	AxisNone         Axis = ""
	AxisHorizontal   Axis = "horizontal"
	AxisVertical     Axis = "vertical"
	AxisDiagonalDown Axis = "diagonal_down" // up-left to down-right
	AxisDiagonalUp   Axis = "diagonal_up"   // down-left to up-right
)

// Result is the outcome of a win check for the player who just moved
type Result struct {
	Won  bool
	Axis Axis
}

// Service detects winning runs on a board
type Service struct {
	logger *slog.Logger
}

// New creates a new win detection Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Check reports whether the current player of game has a winning run.
// It must be called after the move and before the turn is switched.
func (s *Service) Check(game *model.Game) Result {
	anchor, err := game.Anchor()
	if err != nil {
		return Result{}
	}

	cell := game.CurrentCell()
	result := Detect(game.Board, anchor, cell, game.WinLength)
	if result.Won {
		s.logger.Debug("winning run found",
			slog.String("game_id", string(game.ID)),
			slog.Int("player", int(game.CurrentPlayer)),
			slog.String("axis", string(result.Axis)),
			slog.Int("anchor_row", anchor.Row),
			slog.Int("anchor_col", anchor.Col),
		)
	}
	return result
}

// SomeoneWon reports whether the player who just moved has won
func (s *Service) SomeoneWon(game *model.Game) bool {
	return s.Check(game).Won
}

// Detect runs every axis check for cell with the given anchor
func Detect(board *model.Board, anchor model.Position, cell model.Cell, winLength int) Result {
	switch {
	case HorizontalWin(board, cell, winLength):
		return Result{Won: true, Axis: AxisHorizontal}
	case VerticalWin(board, cell, winLength):
		return Result{Won: true, Axis: AxisVertical}
	}
	if axis := DiagonalWin(board, anchor, cell, winLength); axis != AxisNone {
		return Result{Won: true, Axis: axis}
	}
	return Result{}
}

// HorizontalWin scans every row for winLength consecutive cells
func HorizontalWin(board *model.Board, cell model.Cell, winLength int) bool {
	for row := 0; row < board.Rows; row++ {
		if longestRun(board.Cells[row], cell, winLength) >= winLength {
			return true
		}
	}
	return false
}

// VerticalWin scans every column for winLength consecutive cells
func VerticalWin(board *model.Board, cell model.Cell, winLength int) bool {
	for col := 0; col < board.Cols; col++ {
		if longestRun(board.GetCol(col), cell, winLength) >= winLength {
			return true
		}
	}
	return false
}

// longestRun counts consecutive matches and stops as soon as winLength is reached
func longestRun(line []model.Cell, cell model.Cell, winLength int) int {
	count := 0
	for _, c := range line {
		if c == cell {
			count++
		} else {
			count = 0
		}
		if count == winLength {
			return count
		}
	}
	return count
}

// DiagonalWin checks both diagonals through anchor and returns the winning axis.
// Each half counts matches beyond the anchor, capped at winLength-1, and a
// diagonal wins when its two halves sum to at least winLength-1.
func DiagonalWin(board *model.Board, anchor model.Position, cell model.Cell, winLength int) Axis {
	if board.Get(anchor) != cell || cell == model.CellEmpty {
		return AxisNone
	}
	need := winLength - 1

	down := halfScan(board, anchor, 1, -1, cell, need) + halfScan(board, anchor, -1, 1, cell, need)
	if down >= need {
		return AxisDiagonalDown
	}

	up := halfScan(board, anchor, -1, -1, cell, need) + halfScan(board, anchor, 1, 1, cell, need)
	if up >= need {
		return AxisDiagonalUp
	}
	return AxisNone
}

// halfScan walks from anchor by (dRow, dCol) counting matching cells.
// The count saturates at limit.
func halfScan(board *model.Board, anchor model.Position, dRow, dCol int, cell model.Cell, limit int) int {
	if limit <= 0 {
		return 0
	}
	count := 0
	pos := model.Position{Row: anchor.Row + dRow, Col: anchor.Col + dCol}
	for board.IsValidPosition(pos) && board.Get(pos) == cell {
		count++
		if count >= limit {
			return limit
		}
		pos.Row += dRow
		pos.Col += dCol
	}
	return count
}

package board

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mcoot/connectn/internal/model"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// CreateBoard initializes an empty board
func (s *Service) CreateBoard(rows, cols int) (*model.Board, error) {
	board, err := model.NewBoard(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("create %dx%d board: %w", rows, cols, err)
	}
	return board, nil
}

// DropPiece drops a cell into the given column
func (s *Service) DropPiece(board *model.Board, col int, cell model.Cell) (model.Position, error) {
	pos, err := board.DropPiece(col, cell)
	if err != nil {
		return model.Position{}, err
	}

	s.logger.Debug("piece dropped",
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Int("cell", int(cell)),
	)
	return pos, nil
}

// ValidateColumn checks that a column is in range and not full
func (s *Service) ValidateColumn(board *model.Board, col int) error {
	if !board.IsValidColumn(col) {
		return model.ErrOutOfRange
	}
	if !board.ColumnHasSpace(col) {
		return model.ErrColumnFull
	}
	return nil
}

// ValidateMove parses raw player input into a playable column.
// Input must be exactly one digit naming a column that still has space.
func (s *Service) ValidateMove(board *model.Board, input string) (int, error) {
	if len(input) != 1 || input[0] < '0' || input[0] > '9' {
		return 0, model.ErrInvalidInput
	}
	col, err := strconv.Atoi(input)
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	if err := s.ValidateColumn(board, col); err != nil {
		return 0, err
	}
	return col, nil
}

// IsValidMove is the boolean form of ValidateMove
func (s *Service) IsValidMove(board *model.Board, input string) bool {
	_, err := s.ValidateMove(board, input)
	return err == nil
}

// IsFull checks if all cells are filled
func (s *Service) IsFull(board *model.Board) bool {
	return board.IsFull()
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(rows, cols int) (*model.Board, error)
	DropPiece(board *model.Board, col int, cell model.Cell) (model.Position, error)
	ValidateColumn(board *model.Board, col int) error
	ValidateMove(board *model.Board, input string) (int, error)
	IsFull(board *model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)

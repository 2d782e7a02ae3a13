package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/connectn/internal/dependencies/clock"
	"github.com/mcoot/connectn/internal/dependencies/random"
	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/board"
	"github.com/mcoot/connectn/internal/services/wincheck"
)

const (
	gameIDLength = 8

	promptRows      = "Enter the number of rows: "
	promptCols      = "Enter the number of columns: "
	promptWinLength = "Enter the number of pieces in a row to win: "
	promptColumn    = "Enter the column you want to play in: "
)

// Console is the interactive I/O boundary the controller plays through.
// Read calls block until valid input arrives or input is exhausted.
type Console interface {
	ReadPositiveInt(ctx context.Context, prompt string) (int, error)
	ReadColumnChoice(ctx context.Context, prompt string, validate func(string) (int, error)) (int, error)
	RenderBoard(game *model.Game) error
	AnnounceResult(summary *model.GameSummary) error
}

// Settings configures a new game
type Settings struct {
	Rows      int
	Cols      int
	WinLength int
	Pieces    [2]rune // Zero value selects model.DefaultPieces
}

// Controller manages the game state machine and turn flow
type Controller struct {
	boardService *board.Service
	winService   *wincheck.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new GameController
func NewController(
	boardService *board.Service,
	winService *wincheck.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		boardService: boardService,
		winService:   winService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// Setup creates a game ready for player one's first move
func (c *Controller) Setup(ctx context.Context, settings Settings) (*model.Game, error) {
	if settings.WinLength <= 0 {
		return nil, fmt.Errorf("win length %d: %w", settings.WinLength, model.ErrInvalidDimension)
	}

	pieces := settings.Pieces
	if pieces == ([2]rune{}) {
		pieces = model.DefaultPieces
	}
	if err := ValidatePieces(pieces); err != nil {
		return nil, err
	}

	boardObj, err := c.boardService.CreateBoard(settings.Rows, settings.Cols)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.ID(gameIDLength)),
		State:     model.GameStateSetup,
		Board:     boardObj,
		WinLength: settings.WinLength,
		Pieces:    pieces,
		Blank:     model.DefaultBlank,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := game.Start(); err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("rows", boardObj.Rows),
		slog.Int("cols", boardObj.Cols),
		slog.Int("win_length", game.WinLength),
	)

	return game, nil
}

// SetupInteractive collects the board dimensions and win length from the
// console, re-prompting on non-positive values, and creates the game
func (c *Controller) SetupInteractive(ctx context.Context, console Console, pieces [2]rune) (*model.Game, error) {
	rows, err := c.readDimension(ctx, console, promptRows)
	if err != nil {
		return nil, err
	}
	cols, err := c.readDimension(ctx, console, promptCols)
	if err != nil {
		return nil, err
	}
	winLength, err := c.readDimension(ctx, console, promptWinLength)
	if err != nil {
		return nil, err
	}

	return c.Setup(ctx, Settings{
		Rows:      rows,
		Cols:      cols,
		WinLength: winLength,
		Pieces:    pieces,
	})
}

func (c *Controller) readDimension(ctx context.Context, console Console, prompt string) (int, error) {
	for {
		value, err := console.ReadPositiveInt(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if value > 0 {
			return value, nil
		}
		c.logger.DebugContext(ctx, "rejected dimension",
			slog.String("prompt", prompt),
			slog.Int("value", value),
		)
	}
}

// TakeTurn drops the current player's piece into col and resolves the
// game if that move won or filled the board. The turn is not switched.
func (c *Controller) TakeTurn(ctx context.Context, game *model.Game, col int) error {
	if game.State == model.GameStateSetup {
		return model.ErrNotStarted
	}
	if game.IsOver() {
		return model.ErrGameOver
	}
	if err := c.boardService.ValidateColumn(game.Board, col); err != nil {
		return err
	}

	pos, err := c.boardService.DropPiece(game.Board, col, game.CurrentCell())
	if err != nil {
		return err
	}

	game.LastMove = pos
	game.HasMoved = true
	game.MoveCount++
	game.UpdatedAt = c.clock.Now()

	c.resolve(ctx, game)
	return nil
}

// resolve moves the game to a terminal state if the last move ended it
func (c *Controller) resolve(ctx context.Context, game *model.Game) {
	result := c.winService.Check(game)
	switch {
	case result.Won:
		game.State = model.GameStateWon
		game.Winner = game.CurrentPlayer
		game.WinAxis = string(result.Axis)
	case c.boardService.IsFull(game.Board):
		game.State = model.GameStateTied
	default:
		return
	}

	c.logger.InfoContext(ctx, "game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("state", string(game.State)),
		slog.Int("winner", int(game.Winner)),
		slog.Int("moves", game.MoveCount),
		slog.Duration("duration", game.UpdatedAt.Sub(game.CreatedAt)),
	)
}

// SomeoneWon reports whether the player who just moved has a winning run
func (c *Controller) SomeoneWon(game *model.Game) bool {
	return c.winService.SomeoneWon(game)
}

// IsTie reports a full board with no winner
func (c *Controller) IsTie(game *model.Game) bool {
	return c.boardService.IsFull(game.Board) && !c.SomeoneWon(game)
}

// IsGameOver reports whether the game has been won or tied
func (c *Controller) IsGameOver(game *model.Game) bool {
	return c.SomeoneWon(game) || c.IsTie(game)
}

// SwitchTurn hands the move to the other player
func (c *Controller) SwitchTurn(game *model.Game) error {
	if game.State == model.GameStateSetup {
		return model.ErrNotStarted
	}
	if game.IsOver() {
		return model.ErrGameOver
	}
	game.CurrentPlayer = game.CurrentPlayer.Other()
	return nil
}

// Play runs the turn loop until the game is won or tied, then renders the
// final board and announces the result
func (c *Controller) Play(ctx context.Context, game *model.Game, console Console) (*model.GameSummary, error) {
	validate := func(input string) (int, error) {
		return c.boardService.ValidateMove(game.Board, input)
	}

	for !game.IsOver() {
		if err := console.RenderBoard(game); err != nil {
			return nil, err
		}

		col, err := console.ReadColumnChoice(ctx, promptColumn, validate)
		if err != nil {
			return nil, err
		}

		if err := c.TakeTurn(ctx, game, col); err != nil {
			return nil, err
		}

		// A finished game keeps the last mover as current player
		if game.IsOver() {
			break
		}
		if err := c.SwitchTurn(game); err != nil {
			return nil, err
		}
	}

	if err := console.RenderBoard(game); err != nil {
		return nil, err
	}

	summary, err := c.Summary(game)
	if err != nil {
		return nil, err
	}
	if err := console.AnnounceResult(summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Run sets up a game from the console and plays it to completion
func (c *Controller) Run(ctx context.Context, console Console, pieces [2]rune) (*model.GameSummary, error) {
	game, err := c.SetupInteractive(ctx, console, pieces)
	if err != nil {
		return nil, err
	}
	return c.Play(ctx, game, console)
}

// Summary creates a summary record for a completed game
func (c *Controller) Summary(game *model.Game) (*model.GameSummary, error) {
	if !game.IsOver() {
		return nil, fmt.Errorf("summarize game %s: %w", game.ID, model.ErrGameInProgress)
	}

	return &model.GameSummary{
		ID:          game.ID,
		State:       game.State,
		Winner:      game.Winner,
		Axis:        game.WinAxis,
		Moves:       game.MoveCount,
		CompletedAt: c.clock.Now(),
	}, nil
}

// ValidatePieces checks that two display markers are usable
func ValidatePieces(pieces [2]rune) error {
	for _, p := range pieces {
		if p == 0 || p == model.DefaultBlank || p == ' ' {
			return model.ErrInvalidPieces
		}
	}
	if pieces[0] == pieces[1] {
		return model.ErrInvalidPieces
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Setup(ctx context.Context, settings Settings) (*model.Game, error)
	SetupInteractive(ctx context.Context, console Console, pieces [2]rune) (*model.Game, error)
	TakeTurn(ctx context.Context, game *model.Game, col int) error
	SomeoneWon(game *model.Game) bool
	IsTie(game *model.Game) bool
	IsGameOver(game *model.Game) bool
	SwitchTurn(game *model.Game) error
	Play(ctx context.Context, game *model.Game, console Console) (*model.GameSummary, error)
	Run(ctx context.Context, console Console, pieces [2]rune) (*model.GameSummary, error)
	Summary(game *model.Game) (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)

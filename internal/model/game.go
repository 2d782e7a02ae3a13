package model

import "time"

// GameID identifies a game in log output
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateSetup      GameState = "setup"
	GameStateInProgress GameState = "in_progress"
	GameStateWon        GameState = "won"  // CurrentPlayer is the winner
	GameStateTied       GameState = "tied" // Board full, no run of WinLength
)

// Default display markers
const (
	DefaultBlank = '*'
)

// DefaultPieces are the markers for player one and player two
var DefaultPieces = [2]rune{'X', 'O'}

// Game holds everything about a single Connect-N match
type Game struct {
	ID        GameID
	State     GameState
	Board     *Board
	WinLength int

	// Display markers, only used when rendering
	Pieces [2]rune
	Blank  rune

	// Turn management
	CurrentPlayer Player
	MoveCount     int
	Winner        Player
	WinAxis       string

	// Anchor of the most recent piece
	LastMove Position
	HasMoved bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true once the game has been won or tied
func (g *Game) IsOver() bool {
	return g.State == GameStateWon || g.State == GameStateTied
}

// Start moves a game out of setup with player one to move
func (g *Game) Start() error {
	switch g.State {
	case GameStateSetup:
	case GameStateInProgress:
		return ErrGameInProgress
	default:
		return ErrGameOver
	}
	g.State = GameStateInProgress
	g.CurrentPlayer = PlayerOne
	return nil
}

// CurrentCell returns the board cell of the player to move
func (g *Game) CurrentCell() Cell {
	return g.CurrentPlayer.Cell()
}

// Anchor returns the position of the most recent piece
func (g *Game) Anchor() (Position, error) {
	if !g.HasMoved {
		return Position{}, ErrNoMove
	}
	return g.LastMove, nil
}

// PieceFor returns the display marker for a cell
func (g *Game) PieceFor(cell Cell) rune {
	switch cell {
	case CellPlayerOne:
		return g.Pieces[0]
	case CellPlayerTwo:
		return g.Pieces[1]
	default:
		return g.Blank
	}
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	State       GameState
	Winner      Player // NoPlayer if tie
	Axis        string // Winning axis, empty on a tie
	Moves       int
	CompletedAt time.Time
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSetupGame(t *testing.T) *Game {
	t.Helper()
	board, err := NewBoard(2, 2)
	require.NoError(t, err)
	return &Game{State: GameStateSetup, Board: board, WinLength: 2}
}

func TestGameStartLeavesSetup(t *testing.T) {
	game := newSetupGame(t)

	require.NoError(t, game.Start())
	assert.Equal(t, GameStateInProgress, game.State)
	assert.Equal(t, PlayerOne, game.CurrentPlayer)
	assert.False(t, game.IsOver())
}

func TestGameStartOnlyOnce(t *testing.T) {
	game := newSetupGame(t)
	require.NoError(t, game.Start())

	assert.ErrorIs(t, game.Start(), ErrGameInProgress)

	game.State = GameStateTied
	assert.ErrorIs(t, game.Start(), ErrGameOver)
}

func TestAnchorBeforeAnyMove(t *testing.T) {
	game := newSetupGame(t)

	_, err := game.Anchor()
	assert.ErrorIs(t, err, ErrNoMove)

	game.LastMove = Position{Row: 0, Col: 1}
	game.HasMoved = true
	anchor, err := game.Anchor()
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Col: 1}, anchor)
}

func TestPieceFor(t *testing.T) {
	game := &Game{Pieces: [2]rune{'R', 'Y'}, Blank: DefaultBlank}

	assert.Equal(t, 'R', game.PieceFor(CellPlayerOne))
	assert.Equal(t, 'Y', game.PieceFor(CellPlayerTwo))
	assert.Equal(t, '*', game.PieceFor(CellEmpty))
}

package factory

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectn/internal/console"
	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/game"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete game flow from setup to a diagonal win
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueID("GAME01")

	// Step 1: Set up a standard board
	g, err := s.app.GameController.Setup(s.ctx, game.Settings{Rows: 6, Cols: 7, WinLength: 4})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), g.ID)

	// Step 2: Build a staircase so player one can climb the diagonal
	moves := []int{
		0, 1, // X(0,0) O(0,1)
		1, 2, // X(1,1) O(0,2)
		2, 3, // X(1,2) O(0,3)
		2, 3, // X(2,2) O(1,3)
		3, 6, // X(2,3) O(0,6)
	}
	for _, col := range moves {
		s.Require().NoError(s.app.GameController.TakeTurn(s.ctx, g, col))
		s.Require().False(g.IsOver(), "game ended early at column %d", col)
		s.Require().NoError(s.app.GameController.SwitchTurn(g))
		s.app.MockClock.Advance(10 * time.Second)
	}

	// Step 3: Player one completes (0,0)-(1,1)-(2,2)-(3,3)
	s.Equal(model.PlayerOne, g.CurrentPlayer)
	s.Require().NoError(s.app.GameController.TakeTurn(s.ctx, g, 3))

	s.Equal(model.Position{Row: 3, Col: 3}, g.LastMove)
	s.Equal(model.GameStateWon, g.State)
	s.Equal(model.PlayerOne, g.Winner)
	s.Equal("diagonal_up", g.WinAxis)

	summary, err := s.app.GameController.Summary(g)
	s.Require().NoError(err)
	s.Equal(11, summary.Moves)
	s.Equal(100*time.Second, summary.CompletedAt.Sub(g.CreatedAt))
}

// Test: A full interactive session through the console
func (s *IntegrationSuite) TestInteractiveSession() {
	var out bytes.Buffer
	input := "2\n2\n3\n0\n1\n1\n0\n"
	con := console.New(strings.NewReader(input), &out, console.FormatText)

	summary, err := s.app.GameController.Run(s.ctx, con, [2]rune{})
	s.Require().NoError(err)

	s.Equal(model.GameStateTied, summary.State)
	s.Equal(4, summary.Moves)
	s.True(strings.HasSuffix(out.String(), "1 O X\n0 X O\nTie Game\n"))
}

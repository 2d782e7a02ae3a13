package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/connectn/internal/model"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// maxLineLength bounds a single line of input; longer lines are rejected
const maxLineLength = 1024

// Console reads player input and writes the board and results
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	prompts io.Writer
	format  string
}

// Option customizes a Console
type Option func(*Console)

// WithPromptWriter sends prompts somewhere other than the output stream,
// keeping JSON output one document per line
func WithPromptWriter(w io.Writer) Option {
	return func(c *Console) {
		c.prompts = w
	}
}

// New creates a Console over the given streams.
// An unknown format falls back to text.
func New(in io.Reader, out io.Writer, format string, opts ...Option) *Console {
	if format != FormatJSON {
		format = FormatText
	}
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		prompts: out,
		format:  format,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsValidFormat returns true for the supported output formats
func IsValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

// readLine prompts and returns one line without its line ending.
// io.EOF is returned once input is exhausted. A line longer than
// maxLineLength is consumed and reported as model.ErrInvalidInput.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.prompts, prompt); err != nil {
		return "", err
	}

	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := c.in.ReadLine()
		if err != nil {
			// A final line without a newline has already been returned
			return "", err
		}
		if !tooLong && len(line)+len(chunk) <= maxLineLength {
			line = append(line, chunk...)
		} else {
			tooLong = true
			line = nil
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("line longer than %d bytes: %w", maxLineLength, model.ErrInvalidInput)
	}
	return strings.TrimSuffix(string(line), "\r"), nil
}

// ReadPositiveInt prompts until a non-negative integer literal is entered
func (c *Console) ReadPositiveInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if errors.Is(err, model.ErrInvalidInput) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if !isDigits(line) {
			continue
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			// Too large for an int
			continue
		}
		return value, nil
	}
}

// ReadColumnChoice prompts until validate accepts the input
func (c *Console) ReadColumnChoice(ctx context.Context, prompt string, validate func(string) (int, error)) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if errors.Is(err, model.ErrInvalidInput) {
			continue
		}
		if err != nil {
			return 0, err
		}
		col, err := validate(line)
		if err != nil {
			continue
		}
		return col, nil
	}
}

// RenderBoard writes the grid with the top row first
func (c *Console) RenderBoard(game *model.Game) error {
	if c.format == FormatJSON {
		return c.writeJSON(newBoardView(game))
	}
	return c.writeText(formatBoard(game))
}

// AnnounceResult writes the winner or a tie
func (c *Console) AnnounceResult(summary *model.GameSummary) error {
	if c.format == FormatJSON {
		return c.writeJSON(newResultView(summary))
	}
	return c.writeText(formatResult(summary) + "\n")
}

func (c *Console) writeText(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}

func (c *Console) writeJSON(data any) error {
	enc := json.NewEncoder(c.out)
	return enc.Encode(data)
}

// formatBoard renders column headers, then rows numbered rows-1 down to 0
func formatBoard(game *model.Game) string {
	board := game.Board
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < board.Cols; col++ {
		sb.WriteString(strconv.Itoa(col))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := board.Rows - 1; row >= 0; row-- {
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < board.Cols; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(game.PieceFor(board.Cells[row][col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatResult(summary *model.GameSummary) string {
	if summary.State == model.GameStateWon {
		return fmt.Sprintf("Player %d won!", summary.Winner)
	}
	return "Tie Game"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// boardView is the JSON form of a board, top row first
type boardView struct {
	GameID        string     `json:"game_id"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	WinLength     int        `json:"win_length"`
	CurrentPlayer int        `json:"current_player"`
	Cells         [][]string `json:"cells"`
}

func newBoardView(game *model.Game) boardView {
	board := game.Board
	cells := make([][]string, 0, board.Rows)
	for row := board.Rows - 1; row >= 0; row-- {
		line := make([]string, board.Cols)
		for col := 0; col < board.Cols; col++ {
			line[col] = string(game.PieceFor(board.Cells[row][col]))
		}
		cells = append(cells, line)
	}
	return boardView{
		GameID:        string(game.ID),
		Rows:          board.Rows,
		Cols:          board.Cols,
		WinLength:     game.WinLength,
		CurrentPlayer: int(game.CurrentPlayer),
		Cells:         cells,
	}
}

// resultView is the JSON form of a finished game
type resultView struct {
	GameID  string `json:"game_id"`
	Result  string `json:"result"`
	Winner  *int   `json:"winner"`
	Axis    string `json:"axis,omitempty"`
	Moves   int    `json:"moves"`
	Message string `json:"message"`
}

func newResultView(summary *model.GameSummary) resultView {
	view := resultView{
		GameID:  string(summary.ID),
		Result:  string(summary.State),
		Axis:    summary.Axis,
		Moves:   summary.Moves,
		Message: formatResult(summary),
	}
	if summary.State == model.GameStateWon {
		winner := int(summary.Winner)
		view.Winner = &winner
	}
	return view
}

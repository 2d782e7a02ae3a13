package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	envFile    string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "connectn-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/connectn")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		envFile:    filepath.Join(t.TempDir(), "test.env"),
	}
}

// run feeds input on stdin and returns stdout and stderr separately
func (r *cliRunner) run(input string, env []string, args ...string) (string, string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Stdin = strings.NewReader(input)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "CONNECTN_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	cmd.Env = append(cmd.Env, "CONNECTN_ENV_FILE="+r.envFile)
	cmd.Env = append(cmd.Env, env...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing
type boardResponse struct {
	GameID        string     `json:"game_id"`
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	WinLength     int        `json:"win_length"`
	CurrentPlayer int        `json:"current_player"`
	Cells         [][]string `json:"cells"`
}

type resultResponse struct {
	GameID  string `json:"game_id"`
	Result  string `json:"result"`
	Winner  *int   `json:"winner"`
	Axis    string `json:"axis"`
	Moves   int    `json:"moves"`
	Message string `json:"message"`
}

// jsonDocuments splits output into one JSON document per line
func jsonDocuments(t *testing.T, output string) []string {
	t.Helper()

	var docs []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		require.True(t, json.Valid([]byte(line)), "not JSON: %q", line)
		docs = append(docs, line)
	}
	return docs
}

// Tests

func TestCLI_HorizontalWin(t *testing.T) {
	cli := newCLIRunner(t)

	// 6x7 board, four in a row; player one fills the bottom row
	input := "6\n7\n4\n0\n0\n1\n1\n2\n2\n3\n"
	stdout, stderr, err := cli.run(input, nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.True(t, strings.HasPrefix(stdout, "Enter the number of rows: "))
	assert.Contains(t, stdout, "  0 1 2 3 4 5 6 \n")
	assert.Contains(t, stdout, "1 O O O * * * *\n0 X X X X * * *\n")
	assert.True(t, strings.HasSuffix(stdout, "Player 1 won!\n"))
}

func TestCLI_TieGame(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("2\n2\n3\n0\n1\n1\n0\n", nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.True(t, strings.HasSuffix(stdout, "1 O X\n0 X O\nTie Game\n"))
}

func TestCLI_RepromptsInvalidInput(t *testing.T) {
	cli := newCLIRunner(t)

	// Bad dimension, then a letter, an out-of-range column and a full column
	input := "0\n2\n2\n2\nx\n5\n0\n0\n0\n1\n"
	stdout, stderr, err := cli.run(input, nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Equal(t, 2, strings.Count(stdout, "Enter the number of rows: "))
	assert.Equal(t, 6, strings.Count(stdout, "Enter the column you want to play in: "))
	assert.True(t, strings.HasSuffix(stdout, "1 O *\n0 X X\nPlayer 1 won!\n"))
}

func TestCLI_OverlongLineIsRejected(t *testing.T) {
	cli := newCLIRunner(t)

	input := "2\n2\n2\n" + strings.Repeat("0", 100000) + "\n0\n1\n1\n"
	stdout, stderr, err := cli.run(input, nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Equal(t, 4, strings.Count(stdout, "Enter the column you want to play in: "))
	assert.True(t, strings.HasSuffix(stdout, "Player 1 won!\n"))
}

func TestCLI_ExitsCleanlyOnEOF(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("3\n3\n3\n0\n", nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.NotContains(t, stdout, "won!")
	assert.NotContains(t, stdout, "Tie Game")
}

func TestCLI_JSONOutput(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("2\n3\n2\n0\n2\n1\n", nil, "--output", "json")
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stderr, "Enter the column you want to play in: ")
	docs := jsonDocuments(t, stdout)
	require.Len(t, docs, 5)

	var board boardResponse
	require.NoError(t, json.Unmarshal([]byte(docs[0]), &board))
	assert.Equal(t, 2, board.Rows)
	assert.Equal(t, 3, board.Cols)
	assert.Equal(t, 2, board.WinLength)
	assert.Equal(t, 1, board.CurrentPlayer)
	assert.Len(t, board.GameID, 8)

	var result resultResponse
	require.NoError(t, json.Unmarshal([]byte(docs[len(docs)-1]), &result))
	assert.Equal(t, board.GameID, result.GameID)
	assert.Equal(t, "won", result.Result)
	require.NotNil(t, result.Winner)
	assert.Equal(t, 1, *result.Winner)
	assert.Equal(t, "horizontal", result.Axis)
	assert.Equal(t, 3, result.Moves)
	assert.Equal(t, "Player 1 won!", result.Message)
}

func TestCLI_PiecesFromEnvFile(t *testing.T) {
	cli := newCLIRunner(t)
	require.NoError(t, os.WriteFile(cli.envFile, []byte("CONNECTN_PIECES=RY\n"), 0o600))

	stdout, stderr, err := cli.run("1\n2\n2\n0\n1\n", nil)
	require.NoError(t, err, "stderr: %s", stderr)

	assert.Contains(t, stdout, "0 R Y\n")
	assert.True(t, strings.HasSuffix(stdout, "Tie Game\n"))
}

func TestCLI_VerboseLogging(t *testing.T) {
	cli := newCLIRunner(t)

	stdout, stderr, err := cli.run("1\n1\n1\n0\n", nil, "-v")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stdout, "Player 1 won!\n"))
	assert.Contains(t, stderr, "game created")
	assert.Contains(t, stderr, "game completed")
}

func TestCLI_InvalidFlags(t *testing.T) {
	cli := newCLIRunner(t)

	_, stderr, err := cli.run("", nil, "--output", "yaml")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid output format")

	_, _, err = cli.run("", []string{"CONNECTN_PIECES=XX"})
	require.Error(t, err)
}

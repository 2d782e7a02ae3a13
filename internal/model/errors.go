package model

import "errors"

// Common errors used across the application
var (
	// Input errors, recovered by re-prompting
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfRange   = errors.New("column out of range")
	ErrColumnFull   = errors.New("column is full")

	// Setup errors
	ErrInvalidDimension = errors.New("dimensions must be positive")
	ErrInvalidPieces    = errors.New("pieces must be two distinct non-blank characters")

	// Game errors
	ErrNotStarted     = errors.New("game has not started")
	ErrGameOver       = errors.New("game is already over")
	ErrGameInProgress = errors.New("game is still in progress")
	ErrNoMove         = errors.New("no piece has been placed yet")
)

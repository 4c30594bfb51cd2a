package game

import "errors"

var (
	ErrColumnFull         = errors.New("column full")
	ErrColumnOutOfRange   = errors.New("column out of range")
	ErrInvalidPlayer      = errors.New("invalid player")
	ErrInvalidSize        = errors.New("invalid board size")
	ErrInvariantViolation = errors.New("invariant violation")
)

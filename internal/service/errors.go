package service

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidReserve is returned when a pool depth is zero or negative.
	ErrInvalidReserve = errors.New("invalid pool reserve")

	// ErrNotSolvable is returned when the root solver cannot produce a
	// result (degenerate equation or vanishing derivative).
	ErrNotSolvable = errors.New("equation not solvable")

	// ErrTooLittleReceived is returned when the simulated share mint falls
	// below the requested minimum.
	ErrTooLittleReceived = errors.New("too little received")
)

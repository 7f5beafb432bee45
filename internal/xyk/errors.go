package xyk

import "github.com/pkg/errors"

var (
	// ErrInvalidReserve is returned when a pool depth is zero or negative.
	ErrInvalidReserve = errors.New("invalid pool reserve")

	// ErrInvalidAmount is returned when a user amount is nil or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDegenerateEquation is returned when the leading coefficient is zero
	// and the Newton iteration formula does not apply.
	ErrDegenerateEquation = errors.New("degenerate equation: leading coefficient is zero")

	// ErrZeroDerivative is returned when the derivative vanishes at an
	// iterate, which makes the Newton step undefined.
	ErrZeroDerivative = errors.New("zero derivative at iterate")
)

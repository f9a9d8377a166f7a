package schedule

import "github.com/iov-one/treasury/errors"

// Reserved codes 300~309
var (
	// ErrStageExhausted is returned when all stages were executed.
	ErrStageExhausted = errors.Register(300, "all stages executed")

	// ErrInsufficientInterval is returned when the next stage is advanced
	// before its interval elapsed.
	ErrInsufficientInterval = errors.Register(301, "stage interval not elapsed")
)

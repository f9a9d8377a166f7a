package exchange

import "github.com/iov-one/treasury/errors"

var (
	// ErrInsufficientOutput is returned when a swap would give the
	// recipient less than the requested minimum.
	ErrInsufficientOutput = errors.Register(500, "insufficient output amount")
	// ErrNoPair is returned when a swap path uses a pair that does not
	// exist.
	ErrNoPair = errors.Register(501, "no pair")
)

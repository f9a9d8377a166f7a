package utils

import (
	"time"

	"github.com/iov-one/treasury"
)

// Logging writes one entry per delivered transaction with its route and
// processing time. Failures are logged at error level.
type Logging struct{}

var _ treasury.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Handler) (*treasury.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)

	logger := treasury.GetLogger(ctx).With(
		"path", treasury.GetPath(tx),
		"took_us", time.Since(start).Microseconds(),
	)
	switch {
	case err != nil:
		logger.Error("deliver failed", "err", err)
	case res != nil && res.Log != "":
		logger.Info(res.Log)
	default:
		logger.Info("delivered")
	}
	return res, err
}

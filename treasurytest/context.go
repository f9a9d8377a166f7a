package treasurytest

import (
	"context"
	"time"

	"github.com/iov-one/treasury"
)

// Genesis is the deployment moment used by tests that do not care about
// the exact value.
var Genesis = time.Date(2019, time.April, 1, 12, 0, 0, 0, time.UTC)

// Ctx returns a context with the block time set to given moment.
func Ctx(now time.Time) treasury.Context {
	return treasury.WithBlockTime(context.Background(), now)
}

// CtxAt returns a context with the block time set to given offset from
// Genesis.
func CtxAt(offset time.Duration) treasury.Context {
	return Ctx(Genesis.Add(offset))
}

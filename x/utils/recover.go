package utils

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Recovery converts a panic raised below it into an ErrPanic result, so a
// faulty handler fails its own transaction instead of the node.
type Recovery struct{}

var _ treasury.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Handler) (_ *treasury.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}

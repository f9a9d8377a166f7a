package utils

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error.
//
// Every write done by the wrapped handler, including the token transfers
// and the state updates, is discarded when an error is returned.
type Savepoint struct{}

var _ treasury.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// Deliver executes the next handler on a cache wrap of the store.
func (s Savepoint) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx, next treasury.Handler) (*treasury.DeliverResult, error) {
	cstore, ok := store.(treasury.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store cannot be cache wrapped", store)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "writing savepoint")
	}
	return res, nil
}

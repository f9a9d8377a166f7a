package app

import (
	"context"
	"sync"
	"time"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/tendermint/tendermint/libs/log"
)

type executingKey struct{}

// Executor runs operations against the store, one at a time. Each operation
// is executed on a cache of the store that is written back only when the
// operation succeeds.
//
// An operation cannot start another one. Any attempt to call Execute with
// a context that belongs to an operation in progress fails with
// ErrReentrant.
type Executor struct {
	mu      sync.Mutex
	db      treasury.CacheableKVStore
	handler treasury.Handler
	logger  log.Logger
	clock   func() time.Time
	seq     int64
}

// NewExecutor returns an executor dispatching operations to given handler,
// usually a router wrapped with decorators.
func NewExecutor(db treasury.CacheableKVStore, h treasury.Handler, logger log.Logger) *Executor {
	if logger == nil {
		logger = treasury.DefaultLogger
	}
	return &Executor{
		db:      db,
		handler: h,
		logger:  logger,
		clock:   time.Now,
	}
}

// WithClock sets the source of the current time, used when the context
// does not declare the block time.
func (e *Executor) WithClock(clock func() time.Time) *Executor {
	e.clock = clock
	return e
}

// Execute runs given message on behalf of the caller. All changes are
// persisted only if the operation succeeds.
func (e *Executor) Execute(ctx treasury.Context, caller treasury.Address, msg treasury.Msg) (*treasury.DeliverResult, error) {
	return e.run(ctx, caller, msg, false)
}

// Simulate runs given message as Execute does, but never persists any
// change. Use it to check if an operation would succeed now.
func (e *Executor) Simulate(ctx treasury.Context, caller treasury.Address, msg treasury.Msg) (*treasury.DeliverResult, error) {
	return e.run(ctx, caller, msg, true)
}

func (e *Executor) run(ctx treasury.Context, caller treasury.Address, msg treasury.Msg, dry bool) (*treasury.DeliverResult, error) {
	if ctx.Value(executingKey{}) != nil {
		return nil, errors.Wrap(errors.ErrReentrant, "operation in progress")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx = context.WithValue(ctx, executingKey{}, true)
	ctx = x.WithCaller(ctx, caller)
	if _, ok := treasury.BlockTime(ctx); !ok {
		ctx = treasury.WithBlockTime(ctx, e.clock())
	}
	e.seq++
	ctx = treasury.WithSequence(ctx, e.seq)
	ctx = treasury.WithLogger(ctx, e.logger.With("seq", e.seq, "caller", caller))

	cache := e.db.CacheWrap()
	res, err := e.handler.Deliver(ctx, cache, treasury.NewTx(msg))
	if err != nil || dry {
		cache.Discard()
		return res, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write operation changes")
	}
	return res, nil
}

// InitGenesis initializes the store using the genesis content. Time of the
// genesis is the deployment time, if not declared the clock is used.
func (e *Executor) InitGenesis(gen *Genesis, init treasury.Initializer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	params := treasury.GenesisParams{Time: gen.Time}
	if params.Time.IsZero() {
		params.Time = treasury.AsUnixTime(e.clock())
	}

	cache := e.db.CacheWrap()
	if err := init.FromGenesis(gen.Options, params, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write genesis")
	}
	e.logger.Info("genesis loaded", "time", params.Time)
	return nil
}

// Query gives a read only access to the store. No operation is executed
// while the query is running.
func (e *Executor) Query(fn func(db treasury.ReadOnlyKVStore) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.db)
}

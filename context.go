/*
We pass context through context.Context between the executor, decorators,
handlers and collaborators. To do so, treasury defines some common keys to
store info, such as the current time and the logger. Each extension may add
its own keys to enrich the context with specific data.

There should exist two functions for every XYZ of type T
that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set
to avoid lower-level modules overwriting the value.
*/

package treasury

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain
type Context = context.Context

type contextKey int // local to the treasury module

const (
	contextKeyTime contextKey = iota
	contextKeyLogger
	contextKeySequence
)

// DefaultLogger is used for all context that have not
// set anything themselves
var DefaultLogger = log.NewNopLogger()

// WithBlockTime sets the "now" of the operation. All time gates are
// evaluated against this value.
func WithBlockTime(ctx Context, t time.Time) Context {
	if _, ok := ctx.Value(contextKeyTime).(time.Time); ok {
		panic("block time already set")
	}
	return context.WithValue(ctx, contextKeyTime, t.UTC())
}

// BlockTime returns the "now" of the operation, if it was set.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(contextKeyTime).(time.Time)
	return t, ok
}

// Now returns the "now" of the operation as UNIX time.
//
// This function panic if the block time is not provided in the context. This
// must never happen. The panic is here to prevent from broken setup to be
// processing data incorrectly.
func Now(ctx Context) UnixTime {
	t, ok := BlockTime(ctx)
	if !ok {
		panic("block time is not present")
	}
	return AsUnixTime(t)
}

// IsExpired returns true if given time is in the past as compared to the "now"
// as declared for the operation. Expiration is inclusive, meaning that if
// current time is equal to the expiration time than this function returns
// true.
func IsExpired(ctx Context, t UnixTime) bool {
	return t <= Now(ctx)
}

// WithSequence sets the number of the operation being executed.
func WithSequence(ctx Context, seq int64) Context {
	if _, ok := ctx.Value(contextKeySequence).(int64); ok {
		panic("sequence already set")
	}
	return context.WithValue(ctx, contextKeySequence, seq)
}

// GetSequence returns the number of the operation being executed.
func GetSequence(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeySequence).(int64)
	return val, ok
}

// WithLogger sets the logger for this context
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

package x

import (
	"context"

	"github.com/iov-one/treasury"
)

type contextKey int

const contextKeyCaller contextKey = iota

// WithCaller returns a context that authenticates given address as the
// caller of the operation. A caller can be set only once.
func WithCaller(ctx treasury.Context, caller treasury.Address) treasury.Context {
	if _, ok := ctx.Value(contextKeyCaller).(treasury.Address); ok {
		panic("caller already set")
	}
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// Caller returns the address the operation is executed on behalf of.
func Caller(ctx treasury.Context) (treasury.Address, bool) {
	addr, ok := ctx.Value(contextKeyCaller).(treasury.Address)
	return addr, ok
}

// CallerAuth authenticates the address set by WithCaller.
type CallerAuth struct{}

var _ Authenticator = CallerAuth{}

func (CallerAuth) GetAddresses(ctx treasury.Context) []treasury.Address {
	if addr, ok := Caller(ctx); ok && len(addr) != 0 {
		return []treasury.Address{addr}
	}
	return nil
}

func (CallerAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	caller, ok := Caller(ctx)
	return ok && len(caller) != 0 && caller.Equals(addr)
}

package treasurytest

import (
	"context"
	"fmt"

	"github.com/iov-one/treasury"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced addresses. Signer and
// Signers are both considered, use whichever is more convenient.
type Auth struct {
	Signer  treasury.Address
	Signers []treasury.Address
}

func (a *Auth) GetAddresses(treasury.Context) []treasury.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve permissions.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convinience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetAddresses(ctx treasury.Context, addrs ...treasury.Address) treasury.Context {
	return context.WithValue(ctx, a.Key, addrs)
}

func (a *CtxAuth) GetAddresses(ctx treasury.Context) []treasury.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	addrs, ok := val.([]treasury.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []treasury.Address got %T", ctx.Value(a.Key)))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx treasury.Context, addr treasury.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

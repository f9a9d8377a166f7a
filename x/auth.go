package x

import (
	"github.com/iov-one/treasury"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system.
type Authenticator interface {
	// GetAddresses reveals all addresses the operation is executed on
	// behalf of. The first one is the main caller.
	GetAddresses(treasury.Context) []treasury.Address
	// HasAddress checks if any authenticated address matches this one.
	HasAddress(treasury.Context, treasury.Address) bool
}

// Authorizer returns an error if the operation is not executed by a caller
// allowed to perform it.
type Authorizer func(ctx treasury.Context, db treasury.ReadOnlyKVStore) error

// MainCaller returns the first authenticated address if any, otherwise nil
func MainCaller(ctx treasury.Context, auth Authenticator) treasury.Address {
	addrs := auth.GetAddresses(ctx)
	if len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}

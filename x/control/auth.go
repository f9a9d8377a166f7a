package control

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// Authorize returns ErrUnauthorized unless the operation is executed by the
// current controller.
func Authorize(ctx treasury.Context, db treasury.ReadOnlyKVStore, auth x.Authenticator, b *Bucket) error {
	current, err := b.Current(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, current) {
		return errors.Wrap(errors.ErrUnauthorized, "controller only")
	}
	return nil
}

// Authorizer is a ready to use Authorize call. It can be given to the
// extensions that accept an authorization function.
func Authorizer(auth x.Authenticator, b *Bucket) x.Authorizer {
	return func(ctx treasury.Context, db treasury.ReadOnlyKVStore) error {
		return Authorize(ctx, db, auth, b)
	}
}

package token

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Token is a fungible token that reports the result of every operation.
//
// A false result means the token declined the operation, for example
// because of insufficient funds. An error means the operation could not be
// executed at all and the whole enclosing operation must be aborted.
type Token interface {
	Transfer(ctx treasury.Context, db treasury.KVStore, from, to treasury.Address, amount *uint256.Int) (bool, error)
	TransferFrom(ctx treasury.Context, db treasury.KVStore, spender, from, to treasury.Address, amount *uint256.Int) (bool, error)
	Approve(ctx treasury.Context, db treasury.KVStore, owner, spender treasury.Address, amount *uint256.Int) (bool, error)
	BalanceOf(db treasury.ReadOnlyKVStore, owner treasury.Address) (*uint256.Int, error)
}

// LegacyToken is a fungible token that does not report whether a transfer
// succeeded.
//
// A transfer declined by the token returns no error, exactly as a
// successful one. Callers cannot detect that nothing was moved. An error
// is returned only when the transfer could not be executed at all.
type LegacyToken interface {
	Transfer(ctx treasury.Context, db treasury.KVStore, from, to treasury.Address, amount *uint256.Int) error
}

// Tokens resolves token addresses into token implementations.
type Tokens interface {
	Token(addr treasury.Address) Token
	Legacy(addr treasury.Address) LegacyToken
}

// SafeTransfer transfers funds and converts a declined transfer into
// ErrTransferFailed.
func SafeTransfer(ctx treasury.Context, db treasury.KVStore, t Token, from, to treasury.Address, amount *uint256.Int) error {
	ok, err := t.Transfer(ctx, db, from, to, amount)
	if err != nil {
		return errors.Wrap(err, "transfer")
	}
	if !ok {
		return errors.Wrapf(ErrTransferFailed, "%s from %s to %s declined", amount.Dec(), from, to)
	}
	return nil
}

// SafeApprove sets the allowance and converts a declined approval into
// ErrTransferFailed.
func SafeApprove(ctx treasury.Context, db treasury.KVStore, t Token, owner, spender treasury.Address, amount *uint256.Int) error {
	ok, err := t.Approve(ctx, db, owner, spender, amount)
	if err != nil {
		return errors.Wrap(err, "approve")
	}
	if !ok {
		return errors.Wrapf(ErrTransferFailed, "approval of %s for %s declined", amount.Dec(), spender)
	}
	return nil
}

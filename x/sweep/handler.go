package sweep

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// TagToken and TagRecipient are the keys of the tags announcing a
	// recovery.
	TagToken     = "sweep.token"
	TagRecipient = "sweep.recipient"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, authorize x.Authorizer, tokens token.Tokens, d Deployment) {
	lockup := NewLockup(d)
	r.Handle(&RecoverTokenMsg{}, RecoverTokenHandler{authorize: authorize, tokens: tokens, lockup: lockup, vault: d.Vault()})
	r.Handle(&RecoverLegacyTokenMsg{}, RecoverLegacyTokenHandler{authorize: authorize, tokens: tokens, lockup: lockup, vault: d.Vault()})
	r.Handle(&RecoverNativeMsg{}, RecoverNativeHandler{authorize: authorize, tokens: tokens, vault: d.Vault()})
}

// RecoverTokenHandler transfers funds of a token reporting the transfer
// result.
type RecoverTokenHandler struct {
	authorize x.Authorizer
	tokens    token.Tokens
	lockup    Lockup
	vault     treasury.Address
}

var _ treasury.Handler = RecoverTokenHandler{}

// Deliver transfers the funds if the caller is the controller and the
// token is not locked. A declined transfer fails with ErrTransferFailed.
func (h RecoverTokenHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg RecoverTokenMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.lockup.Check(ctx, db, msg.Token); err != nil {
		return nil, err
	}
	amount, err := msg.Value()
	if err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	if err := token.SafeTransfer(ctx, db, h.tokens.Token(msg.Token), h.vault, msg.To, amount); err != nil {
		return nil, err
	}
	treasury.GetLogger(ctx).Info("token recovered", "token", msg.Token, "to", msg.To, "amount", msg.Amount)
	return recovered(msg.Token, msg.To), nil
}

// RecoverLegacyTokenHandler transfers funds of a token that does not
// report the transfer result.
//
// This handler cannot tell a declined transfer from a successful one. It
// succeeds in both cases and only an error returned by the token, meaning
// the transfer could not be executed at all, fails the operation.
type RecoverLegacyTokenHandler struct {
	authorize x.Authorizer
	tokens    token.Tokens
	lockup    Lockup
	vault     treasury.Address
}

var _ treasury.Handler = RecoverLegacyTokenHandler{}

// Deliver requests the transfer if the caller is the controller and the
// token is not locked.
func (h RecoverLegacyTokenHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg RecoverLegacyTokenMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.lockup.Check(ctx, db, msg.Token); err != nil {
		return nil, err
	}
	amount, err := msg.Value()
	if err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	if err := h.tokens.Legacy(msg.Token).Transfer(ctx, db, h.vault, msg.To, amount); err != nil {
		return nil, errors.Wrap(err, "legacy transfer")
	}
	treasury.GetLogger(ctx).Info("legacy token transfer requested", "token", msg.Token, "to", msg.To, "amount", msg.Amount)
	return recovered(msg.Token, msg.To), nil
}

// RecoverNativeHandler transfers the native asset. The native asset is
// never locked.
type RecoverNativeHandler struct {
	authorize x.Authorizer
	tokens    token.Tokens
	vault     treasury.Address
}

var _ treasury.Handler = RecoverNativeHandler{}

// Deliver transfers the native asset if the caller is the controller.
func (h RecoverNativeHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg RecoverNativeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	amount, err := msg.Value()
	if err != nil {
		return nil, errors.Wrap(err, "amount")
	}
	if err := token.SafeTransfer(ctx, db, h.tokens.Token(token.NativeAsset), h.vault, msg.To, amount); err != nil {
		return nil, err
	}
	treasury.GetLogger(ctx).Info("native asset recovered", "to", msg.To, "amount", msg.Amount)
	return recovered(token.NativeAsset, msg.To), nil
}

func recovered(tok, to treasury.Address) *treasury.DeliverResult {
	return &treasury.DeliverResult{
		Log: "recovered",
		Tags: []common.KVPair{
			{Key: []byte(TagToken), Value: []byte(tok.String())},
			{Key: []byte(TagRecipient), Value: []byte(to.String())},
		},
	}
}

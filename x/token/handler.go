package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, authorize x.Authorizer, registry *Registry) {
	r.Handle(&RegisterTokenMsg{}, RegisterTokenHandler{authorize: authorize, registry: registry})
}

// RegisterTokenHandler adds new tokens to the registry.
type RegisterTokenHandler struct {
	authorize x.Authorizer
	registry  *Registry
}

var _ treasury.Handler = RegisterTokenHandler{}

// Deliver registers the token if the caller is allowed to and the token is
// not registered yet. Authorization is checked before the message content.
func (h RegisterTokenHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg RegisterTokenMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.registry.Register(db, msg.Token, msg.info()); err != nil {
		return nil, err
	}
	return &treasury.DeliverResult{Data: msg.Token}, nil
}

package control

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// TagPrevious and TagCurrent are the keys of the tags that announce
	// the change of the controller.
	TagPrevious = "controller.previous"
	TagCurrent  = "controller.current"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, auth x.Authenticator, b *Bucket) {
	r.Handle(&TransferControlMsg{}, TransferControlHandler{auth: auth, bucket: b})
}

// TransferControlHandler replaces the controller.
type TransferControlHandler struct {
	auth   x.Authenticator
	bucket *Bucket
}

var _ treasury.Handler = TransferControlHandler{}

// Deliver replaces the controller if the operation is executed by the
// current one. Authorization is checked before the message content.
func (h TransferControlHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	previous, err := h.bucket.Current(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, previous) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "controller only, called by %s", x.MainCaller(ctx, h.auth))
	}

	var msg TransferControlMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.bucket.Set(db, msg.NewController); err != nil {
		return nil, errors.Wrap(err, "cannot store controller")
	}

	treasury.GetLogger(ctx).Info("control transferred", "previous", previous, "current", msg.NewController)
	return &treasury.DeliverResult{
		Log: "control transferred",
		Tags: []common.KVPair{
			{Key: []byte(TagPrevious), Value: []byte(previous.String())},
			{Key: []byte(TagCurrent), Value: []byte(msg.NewController.String())},
		},
	}, nil
}

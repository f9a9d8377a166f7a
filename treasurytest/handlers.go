package treasurytest

import (
	"github.com/iov-one/treasury"
	"github.com/tendermint/tendermint/libs/common"
)

// Handler implements a mock of treasury.Handler.
//
// Use this handler in your tests. Set DeliverErr to force the response.
// Every Deliver call is counted. Set Key to have a value written to the
// store on every call, even when an error is returned.
type Handler struct {
	deliverCall int

	// Key and Value are written to the store when Key is set.
	Key   []byte
	Value []byte

	// Tags are returned on success.
	Tags []common.KVPair

	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error

	// Panic if set makes Deliver panic with this value.
	Panic interface{}
}

var _ treasury.Handler = (*Handler)(nil)

func (h *Handler) CallCount() int {
	return h.deliverCall
}

func (h *Handler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	h.deliverCall++
	if h.Key != nil {
		if err := db.Set(h.Key, h.Value); err != nil {
			return nil, err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	return &treasury.DeliverResult{Tags: h.Tags}, nil
}

// Decorator is a mock implementation of the treasury.Decorator interface.
//
// Set DeliverErr to force error response. If not set then the wrapped
// handler is called and its result returned.
type Decorator struct {
	deliverCall int

	DeliverErr error
}

var _ treasury.Decorator = (*Decorator)(nil)

func (d *Decorator) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx, next treasury.Handler) (*treasury.DeliverResult, error) {
	d.deliverCall++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CallCount() int {
	return d.deliverCall
}

// Decorate returns a handler that calls given decorator with the handler
// as the next one.
func Decorate(h treasury.Handler, d treasury.Decorator) treasury.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn treasury.Handler
	dc treasury.Decorator
}

func (d *decoratedHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}

// Msg is a mock message.
type Msg struct {
	RoutePath string
	Err       error
}

var _ treasury.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	if m.RoutePath == "" {
		return "test/mock"
	}
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

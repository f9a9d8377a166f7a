package app

import (
	"reflect"

	"github.com/iov-one/treasury"
)

// Decorators is an ordered decorator stack waiting for the handler it wraps.
type Decorators struct {
	chain []treasury.Decorator
}

// ChainDecorators builds a stack from given decorators. The first decorator
// is the outermost one. Nil entries are skipped, so optional decorators can
// be passed unconditionally:
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		utils.NewSavepoint(),
//	).WithHandler(router)
func ChainDecorators(chain ...treasury.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new stack with given decorators placed below the existing
// ones. The receiver is not modified.
func (d Decorators) Chain(chain ...treasury.Decorator) Decorators {
	next := make([]treasury.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNilDecorator(d treasury.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack over h. A delivery passes every decorator
// in the chain order before reaching h.
func (d Decorators) WithHandler(h treasury.Handler) treasury.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = layer{decorator: d.chain[i], inner: h}
	}
	return h
}

// layer binds a decorator to the handler below it.
type layer struct {
	decorator treasury.Decorator
	inner     treasury.Handler
}

var _ treasury.Handler = layer{}

func (l layer) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	return l.decorator.Deliver(ctx, db, tx, l.inner)
}

package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]treasury.Handler
}

var _ treasury.Registry = (*Router)(nil)
var _ treasury.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]treasury.Handler),
	}
}

// Handle adds a new Handler for the given message path. Registering two
// handlers for the same path is a programming error and panics.
func (r *Router) Handle(m treasury.Msg, h treasury.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %T: %s", m, path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %T: %s", m, path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r *Router) handler(m treasury.Msg) treasury.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Deliver dispatches the operation to the handler registered for the path
// of its message.
func (r *Router) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	h := r.handler(msg)
	return h.Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound.
type notFoundHandler string

func (path notFoundHandler) Deliver(treasury.Context, treasury.KVStore, treasury.Tx) (*treasury.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

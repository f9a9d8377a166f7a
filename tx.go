package treasury

import (
	"reflect"

	"github.com/iov-one/treasury/errors"
)

// Msg is a request for the treasury to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. The identity of the caller is carried by the context.
type Msg interface {
	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate performs a sanity check of the message content. It does
	// not consult the state.
	Validate() error
}

// Tx represent the data sent by the caller to the treasury.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}

	// Destination must be a pointer to a structure. Message can be
	// either a pointer or a value.
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non nil pointer, got %T", destination)
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dest.Type().Elem()) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", msg, destination)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// TxFunc is a transaction carrying a single, already decoded message.
type TxFunc func() (Msg, error)

// GetMsg implements Tx.
func (fn TxFunc) GetMsg() (Msg, error) {
	return fn()
}

// NewTx returns a transaction wrapping given message.
func NewTx(msg Msg) Tx {
	return TxFunc(func() (Msg, error) { return msg, nil })
}

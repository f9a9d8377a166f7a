package treasury

import (
	"encoding/json"

	"github.com/tendermint/tendermint/libs/common"
)

// Handler is a core engine that can process a few specific messages
// This could represent "advance the schedule", or "recover a token".
type Handler interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, savepoints or logging, to many Handlers
type Decorator interface {
	Deliver(ctx Context, store KVStore, tx Tx, next Handler) (*DeliverResult, error)
}

// HandlerFunc allows to use a function as a Handler.
type HandlerFunc func(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)

// Deliver calls the wrapped function.
func (fn HandlerFunc) Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error) {
	return fn(ctx, store, tx)
}

// DeliverResult captures any non-error result of a successfully
// executed operation.
type DeliverResult struct {
	// Data is a machine-parseable return value, like an id of a newly
	// created object.
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags are used to notify observers about what happened. Use them to
	// announce state changes, for example a new controller.
	Tags []common.KVPair
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	// Handle assigns given handler to the path of given message.
	Handle(m Msg, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// GenesisParams are the values that are known when the treasury is
// deployed and that are not part of the genesis file.
type GenesisParams struct {
	// Time is the moment of the deployment. It becomes the reference
	// point for every lockup and for the first stage gate.
	Time UnixTime
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(opts Options, params GenesisParams, db KVStore) error
}

// InitializerFunc allows to use a function as an Initializer.
type InitializerFunc func(Options, GenesisParams, KVStore) error

// FromGenesis calls the wrapped function.
func (fn InitializerFunc) FromGenesis(opts Options, params GenesisParams, db KVStore) error {
	return fn(opts, params, db)
}

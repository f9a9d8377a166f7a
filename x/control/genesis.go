package control

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

const optKey = "control"

// Genesis declares the initial controller, normally the deploying agent.
type Genesis struct {
	Controller treasury.Address `json:"controller"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	Bucket *Bucket
}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis stores the initial controller. A controller is required.
func (i *Initializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, db treasury.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot load controller: %s", err)
	}
	if err := i.Bucket.Set(db, gen.Controller); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return nil
}

package sweep

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis stores the lockup configuration.
func (*Initializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, db treasury.KVStore) error {
	var conf Configuration
	return gconf.InitConfig(db, opts, confKey, &conf)
}

package schedule

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	State *StateBucket
}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration and starts the schedule at the
// deployment time. The first stage can be executed once the bootstrap
// interval elapsed since then.
func (i *Initializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, db treasury.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, confKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	state := &State{
		StageCount:     0,
		LastClaimTime:  params.Time,
		DeploymentTime: params.Time,
	}
	return i.State.Save(db, state)
}

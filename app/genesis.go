package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Genesis is the content of the genesis file. Extensions read their part
// from the options, the time of the deployment is declared separately.
type Genesis struct {
	Time    treasury.UnixTime
	Options treasury.Options
}

// LoadGenesis reads and decodes the genesis file from given path.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "loading genesis file: %s", err)
	}
	return ParseGenesis(raw)
}

// ParseGenesis decodes the genesis file content. If the time of the
// deployment is not declared, it is left zero and must be provided by the
// caller.
func ParseGenesis(raw []byte) (*Genesis, error) {
	var opts treasury.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshaling genesis file: %s", err)
	}
	var t treasury.UnixTime
	if err := opts.ReadOptions("time", &t); err != nil {
		return nil, errors.Wrap(err, "genesis time")
	}
	return &Genesis{Time: t, Options: opts}, nil
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...treasury.Initializer) treasury.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []treasury.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, kv treasury.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, params, kv); err != nil {
			return err
		}
	}
	return nil
}

package exchange

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/safemath"
)

const optKey = "exchange"

// GenesisPair declares a pair and its initial liquidity.
type GenesisPair struct {
	TokenA  treasury.Address `json:"token_a"`
	TokenB  treasury.Address `json:"token_b"`
	AmountA string           `json:"amount_a"`
	AmountB string           `json:"amount_b"`
}

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct {
	Router *Router
}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration and creates the declared pairs.
// Tokens of every pair must be registered beforehand.
func (i *Initializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, db treasury.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, confKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	var pairs []GenesisPair
	if err := opts.ReadOptions(optKey, &pairs); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot load pairs: %s", err)
	}
	for n, p := range pairs {
		a, err := safemath.ParseAmount(p.AmountA)
		if err != nil {
			return errors.Wrapf(err, "pair %d", n)
		}
		b, err := safemath.ParseAmount(p.AmountB)
		if err != nil {
			return errors.Wrapf(err, "pair %d", n)
		}
		if _, err := i.Router.CreatePair(db, p.TokenA, p.TokenB, a, b); err != nil {
			return errors.Wrapf(err, "pair %d", n)
		}
	}
	return nil
}

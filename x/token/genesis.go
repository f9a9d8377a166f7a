package token

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
)

const optKey = "tokens"

// GenesisBalance is used to parse the json from genesis file.
type GenesisBalance struct {
	Owner  treasury.Address `json:"owner"`
	Amount string           `json:"amount"`
}

// GenesisToken declares a token and its initial distribution.
type GenesisToken struct {
	Address        treasury.Address `json:"address"`
	Ticker         string           `json:"ticker"`
	Legacy         bool             `json:"legacy"`
	FeeBasisPoints uint32           `json:"fee_basis_points"`
	Balances       []GenesisBalance `json:"balances"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	Ledger *Ledger
}

var _ treasury.Initializer = (*Initializer)(nil)

// FromGenesis registers all declared tokens and mints the initial
// balances. Native asset balances are declared under the "native" key.
func (i *Initializer) FromGenesis(opts treasury.Options, params treasury.GenesisParams, db treasury.KVStore) error {
	var tokens []GenesisToken
	if err := opts.ReadOptions(optKey, &tokens); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot load tokens: %s", err)
	}
	for _, t := range tokens {
		info := &TokenInfo{
			Ticker:         t.Ticker,
			Legacy:         t.Legacy,
			FeeBasisPoints: t.FeeBasisPoints,
		}
		if err := i.Ledger.Registry().Register(db, t.Address, info); err != nil {
			return errors.Wrapf(err, "token %q", t.Ticker)
		}
		if err := i.mint(db, t.Address, t.Balances); err != nil {
			return errors.Wrapf(err, "token %q", t.Ticker)
		}
	}

	var native []GenesisBalance
	if err := opts.ReadOptions("native", &native); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot load native balances: %s", err)
	}
	if err := i.mint(db, NativeAsset, native); err != nil {
		return errors.Wrap(err, "native")
	}
	return nil
}

func (i *Initializer) mint(db treasury.KVStore, token treasury.Address, balances []GenesisBalance) error {
	for _, b := range balances {
		amount, err := safemath.ParseAmount(b.Amount)
		if err != nil {
			return errors.Wrapf(err, "balance of %s", b.Owner)
		}
		if err := i.Ledger.Mint(db, token, b.Owner, amount); err != nil {
			return errors.Wrapf(err, "balance of %s", b.Owner)
		}
	}
	return nil
}

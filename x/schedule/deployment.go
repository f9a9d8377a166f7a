package schedule

import (
	"github.com/iov-one/treasury"
)

// Deployment exposes the facts fixed when the treasury was deployed to the
// extensions that depend on them.
type Deployment struct {
	state *StateBucket
}

// NewDeployment returns a Deployment reading given state bucket.
func NewDeployment(state *StateBucket) Deployment {
	return Deployment{state: state}
}

// DeployedAt returns the deployment time of the treasury.
func (d Deployment) DeployedAt(db treasury.ReadOnlyKVStore) (treasury.UnixTime, error) {
	return d.state.DeployedAt(db)
}

// TrackedTokens returns the primary and the secondary token.
func (d Deployment) TrackedTokens(db treasury.ReadOnlyKVStore) ([]treasury.Address, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	return []treasury.Address{conf.PrimaryToken, conf.SecondaryToken}, nil
}

// PrimaryToken returns the token paid out by the stages.
func (d Deployment) PrimaryToken(db treasury.ReadOnlyKVStore) (treasury.Address, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	return conf.PrimaryToken, nil
}

// Vault returns the address holding the treasury funds.
func (Deployment) Vault() treasury.Address {
	return Vault
}

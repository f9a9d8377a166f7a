package sweep

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/safemath"
)

const confKey = "sweep"

// Configuration declares the lockup windows counted from the deployment.
type Configuration struct {
	// AdminLockup must elapse before the controller can recover a tracked
	// token.
	AdminLockup treasury.UnixDuration `protobuf:"varint,1,opt,name=admin_lockup,json=adminLockup,proto3,casttype=github.com/iov-one/treasury.UnixDuration" json:"admin_lockup,omitempty"`
	// EcosystemLockup is declared for the ecosystem claim. No operation
	// enforces it.
	EcosystemLockup treasury.UnixDuration `protobuf:"varint,2,opt,name=ecosystem_lockup,json=ecosystemLockup,proto3,casttype=github.com/iov-one/treasury.UnixDuration" json:"ecosystem_lockup,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// Validate ensures both lockups are valid durations.
func (m *Configuration) Validate() error {
	if err := m.AdminLockup.Validate(); err != nil {
		return errors.Wrap(err, "admin lockup")
	}
	if err := m.EcosystemLockup.Validate(); err != nil {
		return errors.Wrap(err, "ecosystem lockup")
	}
	return nil
}

// LoadConfiguration returns the sweep configuration stored at genesis.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// Deployment provides the facts fixed at the deployment of the treasury.
type Deployment interface {
	DeployedAt(db treasury.ReadOnlyKVStore) (treasury.UnixTime, error)
	// TrackedTokens returns the tokens guarded by the admin lockup.
	TrackedTokens(db treasury.ReadOnlyKVStore) ([]treasury.Address, error)
	// Vault returns the address funds are recovered from.
	Vault() treasury.Address
}

// Lockup is the read surface of the lockup windows.
type Lockup struct {
	deployment Deployment
}

// NewLockup returns a Lockup computing the windows from given deployment.
func NewLockup(d Deployment) Lockup {
	return Lockup{deployment: d}
}

// AdminUnlockTime returns the last moment at which the tracked tokens are
// still locked. Recovery succeeds strictly after it.
func (l Lockup) AdminUnlockTime(db treasury.ReadOnlyKVStore) (treasury.UnixTime, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return 0, err
	}
	return l.after(db, conf.AdminLockup)
}

// EcosystemUnlockTime returns the end of the ecosystem lockup. It is
// informative only.
func (l Lockup) EcosystemUnlockTime(db treasury.ReadOnlyKVStore) (treasury.UnixTime, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return 0, err
	}
	return l.after(db, conf.EcosystemLockup)
}

func (l Lockup) after(db treasury.ReadOnlyKVStore, d treasury.UnixDuration) (treasury.UnixTime, error) {
	deployed, err := l.deployment.DeployedAt(db)
	if err != nil {
		return 0, errors.Wrap(err, "deployment time")
	}
	t, err := safemath.AddTime(deployed, d)
	if err != nil {
		return 0, errors.Wrap(err, "unlock time")
	}
	return t, nil
}

// Check returns ErrLockupNotExpired if given token is tracked and the admin
// lockup did not elapse yet.
func (l Lockup) Check(ctx treasury.Context, db treasury.ReadOnlyKVStore, token treasury.Address) error {
	tracked, err := l.deployment.TrackedTokens(db)
	if err != nil {
		return errors.Wrap(err, "tracked tokens")
	}
	var isTracked bool
	for _, t := range tracked {
		if t.Equals(token) {
			isTracked = true
			break
		}
	}
	if !isTracked {
		return nil
	}
	unlock, err := l.AdminUnlockTime(db)
	switch {
	case errors.ErrOverflow.Is(err):
		// The lockup never ends.
		return errors.Wrapf(ErrLockupNotExpired, "%s is locked forever", token)
	case err != nil:
		return err
	}
	if now := treasury.Now(ctx); now <= unlock {
		return errors.Wrapf(ErrLockupNotExpired, "%s is locked until %s", token, unlock)
	}
	return nil
}

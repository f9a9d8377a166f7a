package gconf

import (
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// ReadStore is a subset of treasury.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of treasury.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is implemented by every extension configuration. It is a
// protobuf message that can validate itself.
type Configuration = orm.Model

func key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special
// "configuration" singleton for that package name.
func Save(db Store, pkg string, src Configuration) error {
	k := key(pkg)
	raw, err := orm.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "key %q", k)
	}
	if err := db.Set(k, raw); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "key %q: %s", k, err)
	}
	return nil
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if the configuration was never saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	k := key(pkg)
	raw, err := db.Get(k)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "key %q: %s", k, err)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", k)
	}
	if err := orm.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "key %q", k)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given
// Configuration object validate it, and store under the proper key in the
// database. Returns an error if anything goes wrong.
func InitConfig(db Store, opts treasury.Options, pkg string, conf Configuration) error {
	var confOptions treasury.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrapf(errors.ErrInput, "read conf: %s", err)
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(errors.ErrInput, "read configuration for %s: %s", pkg, err)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}

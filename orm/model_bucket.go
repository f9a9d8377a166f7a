package orm

import (
	"reflect"
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// ModelBucket is a namespace for models of a single type.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db treasury.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists, ErrNotFound
	// otherwise.
	Has(db treasury.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. The model is validated
	// before it is written.
	Put(db treasury.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db treasury.KVStore, key []byte) error
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// NewModelBucket returns a ModelBucket instance. All keys are prefixed with
// the bucket name so that buckets sharing a store never collide. Given
// model is used as the type reference, only models of that type can be
// stored and loaded.
func NewModelBucket(name string, m Model) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	return &modelBucket{
		prefix: []byte(name + ":"),
		model:  reflect.TypeOf(m),
	}
}

type modelBucket struct {
	prefix []byte
	model  reflect.Type
}

func (mb *modelBucket) dbKey(key []byte) []byte {
	if len(key) == 0 {
		panic("empty key")
	}
	return append(append([]byte(nil), mb.prefix...), key...)
}

func (mb *modelBucket) One(db treasury.ReadOnlyKVStore, key []byte, dest Model) error {
	if t := reflect.TypeOf(dest); t != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", mb.model, t)
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return Unmarshal(raw, dest)
}

func (mb *modelBucket) Has(db treasury.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) Put(db treasury.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "cannot store %s in a %s bucket", t, mb.model)
	}
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db treasury.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

var _ ModelBucket = (*modelBucket)(nil)

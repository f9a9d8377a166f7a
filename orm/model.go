package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
//
// Models are protobuf messages. Serialization is done by the bucket so the
// model is not expected to implement Marshal and Unmarshal methods.
type Model interface {
	proto.Message
	Validate() error
}

// Marshal validates and serializes given model.
func Marshal(m Model) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	return raw, nil
}

// Unmarshal loads serialized data into given model.
func Unmarshal(raw []byte, dest Model) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal into %T: %s", dest, err)
	}
	return nil
}

package exchange

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
)

const confKey = "exchange"

// Configuration declares the token representing the native asset in
// pairs.
type Configuration struct {
	WrappedNative treasury.Address `protobuf:"bytes,1,opt,name=wrapped_native,json=wrappedNative,proto3,casttype=github.com/iov-one/treasury.Address" json:"wrapped_native,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// Validate ensures the wrapped native token address is valid.
func (m *Configuration) Validate() error {
	if err := m.WrappedNative.Validate(); err != nil {
		return errors.Wrap(err, "wrapped native")
	}
	return nil
}

// LoadConfiguration returns the exchange configuration stored at genesis.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

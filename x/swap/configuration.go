package swap

import (
	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/gconf"
	"github.com/iov-one/treasury/safemath"
)

const confKey = "swap"

// Configuration declares the route and the limits of the swaps.
type Configuration struct {
	// Router is the address the exchange spends approved funds as.
	Router        treasury.Address `protobuf:"bytes,1,opt,name=router,proto3,casttype=github.com/iov-one/treasury.Address" json:"router,omitempty"`
	WrappedNative treasury.Address `protobuf:"bytes,2,opt,name=wrapped_native,json=wrappedNative,proto3,casttype=github.com/iov-one/treasury.Address" json:"wrapped_native,omitempty"`
	Stable        treasury.Address `protobuf:"bytes,3,opt,name=stable,proto3,casttype=github.com/iov-one/treasury.Address" json:"stable,omitempty"`
	// DeadlineOffset is added to the current time to compute the deadline
	// of every leg.
	DeadlineOffset treasury.UnixDuration `protobuf:"varint,4,opt,name=deadline_offset,json=deadlineOffset,proto3,casttype=github.com/iov-one/treasury.UnixDuration" json:"deadline_offset,omitempty"`
	// Minimum outputs of each leg, decimal representations.
	NativeFirstMin  string `protobuf:"bytes,5,opt,name=native_first_min,json=nativeFirstMin,proto3" json:"native_first_min,omitempty"`
	NativeSecondMin string `protobuf:"bytes,6,opt,name=native_second_min,json=nativeSecondMin,proto3" json:"native_second_min,omitempty"`
	StableFirstMin  string `protobuf:"bytes,7,opt,name=stable_first_min,json=stableFirstMin,proto3" json:"stable_first_min,omitempty"`
	StableSecondMin string `protobuf:"bytes,8,opt,name=stable_second_min,json=stableSecondMin,proto3" json:"stable_second_min,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// Validate ensures all addresses, the offset and the floors are valid.
func (m *Configuration) Validate() error {
	if err := m.Router.Validate(); err != nil {
		return errors.Wrap(err, "router")
	}
	if err := m.WrappedNative.Validate(); err != nil {
		return errors.Wrap(err, "wrapped native")
	}
	if err := m.Stable.Validate(); err != nil {
		return errors.Wrap(err, "stable")
	}
	if err := m.DeadlineOffset.Validate(); err != nil {
		return errors.Wrap(err, "deadline offset")
	}
	for name, floor := range map[string]string{
		"native first min":  m.NativeFirstMin,
		"native second min": m.NativeSecondMin,
		"stable first min":  m.StableFirstMin,
		"stable second min": m.StableSecondMin,
	} {
		if _, err := safemath.ParseAmount(floor); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// floors returns the minimum outputs of both legs of a route.
func (m *Configuration) floors(first, second string) (*uint256.Int, *uint256.Int, error) {
	a, err := safemath.ParseAmount(first)
	if err != nil {
		return nil, nil, err
	}
	b, err := safemath.ParseAmount(second)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Deadline returns the deadline of a swap started at given time.
func (m *Configuration) Deadline(now treasury.UnixTime) (treasury.UnixTime, error) {
	d, err := safemath.AddTime(now, m.DeadlineOffset)
	if err != nil {
		return 0, errors.Wrap(err, "deadline")
	}
	return d, nil
}

// LoadConfiguration returns the swap configuration stored at genesis.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

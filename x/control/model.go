package control

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
)

// Controller is the singleton holding the controller address.
type Controller struct {
	Address treasury.Address `protobuf:"bytes,1,opt,name=address,proto3,casttype=github.com/iov-one/treasury.Address" json:"address,omitempty"`
}

func (m *Controller) Reset()         { *m = Controller{} }
func (m *Controller) String() string { return proto.CompactTextString(m) }
func (*Controller) ProtoMessage()    {}

// Validate ensures the controller address is valid.
func (m *Controller) Validate() error {
	if err := m.Address.Validate(); err != nil {
		return errors.Wrap(err, "controller")
	}
	return nil
}

var singletonKey = []byte("current")

// Bucket stores the controller.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for the controller singleton.
func NewBucket() *Bucket {
	return &Bucket{ModelBucket: orm.NewModelBucket("control", &Controller{})}
}

// Current returns the address of the current controller.
func (b *Bucket) Current(db treasury.ReadOnlyKVStore) (treasury.Address, error) {
	var c Controller
	if err := b.One(db, singletonKey, &c); err != nil {
		return nil, errors.Wrap(err, "controller")
	}
	return c.Address, nil
}

// Set replaces the controller.
func (b *Bucket) Set(db treasury.KVStore, addr treasury.Address) error {
	return b.Put(db, singletonKey, &Controller{Address: addr})
}

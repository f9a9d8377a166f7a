package control

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

var _ treasury.Msg = (*TransferControlMsg)(nil)

// TransferControlMsg replaces the controller.
type TransferControlMsg struct {
	NewController treasury.Address `protobuf:"bytes,1,opt,name=new_controller,json=newController,proto3,casttype=github.com/iov-one/treasury.Address" json:"new_controller,omitempty"`
}

func (m *TransferControlMsg) Reset()         { *m = TransferControlMsg{} }
func (m *TransferControlMsg) String() string { return proto.CompactTextString(m) }
func (*TransferControlMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (TransferControlMsg) Path() string {
	return "control/transfer"
}

// Validate ensures the new controller is a valid, non zero address.
func (m *TransferControlMsg) Validate() error {
	if err := m.NewController.Validate(); err != nil {
		return errors.Wrap(err, "new controller")
	}
	return nil
}

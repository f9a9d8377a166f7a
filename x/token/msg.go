package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

var _ treasury.Msg = (*RegisterTokenMsg)(nil)

// RegisterTokenMsg adds a token to the registry, so that it can be held and
// recovered by the treasury.
type RegisterTokenMsg struct {
	Token          treasury.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=github.com/iov-one/treasury.Address" json:"token,omitempty"`
	Ticker         string           `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Legacy         bool             `protobuf:"varint,3,opt,name=legacy,proto3" json:"legacy,omitempty"`
	FeeBasisPoints uint32           `protobuf:"varint,4,opt,name=fee_basis_points,json=feeBasisPoints,proto3" json:"fee_basis_points,omitempty"`
}

func (m *RegisterTokenMsg) Reset()         { *m = RegisterTokenMsg{} }
func (m *RegisterTokenMsg) String() string { return proto.CompactTextString(m) }
func (*RegisterTokenMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (RegisterTokenMsg) Path() string {
	return "token/register"
}

// Validate ensures the message is well formed.
func (m *RegisterTokenMsg) Validate() error {
	if err := m.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	return m.info().Validate()
}

func (m *RegisterTokenMsg) info() *TokenInfo {
	return &TokenInfo{
		Ticker:         m.Ticker,
		Legacy:         m.Legacy,
		FeeBasisPoints: m.FeeBasisPoints,
	}
}

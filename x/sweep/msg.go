package sweep

import (
	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
)

var _ treasury.Msg = (*RecoverTokenMsg)(nil)

// RecoverTokenMsg transfers an amount of a token held by the vault.
type RecoverTokenMsg struct {
	Token treasury.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=github.com/iov-one/treasury.Address" json:"token,omitempty"`
	To    treasury.Address `protobuf:"bytes,2,opt,name=to,proto3,casttype=github.com/iov-one/treasury.Address" json:"to,omitempty"`
	// Amount is a decimal representation of the amount.
	Amount string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RecoverTokenMsg) Reset()         { *m = RecoverTokenMsg{} }
func (m *RecoverTokenMsg) String() string { return proto.CompactTextString(m) }
func (*RecoverTokenMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (RecoverTokenMsg) Path() string {
	return "sweep/recover"
}

// Validate ensures the message is well formed.
func (m *RecoverTokenMsg) Validate() error {
	return validateRecovery(m.Token, m.To, m.Amount)
}

// Value returns the recovered amount.
func (m *RecoverTokenMsg) Value() (*uint256.Int, error) {
	return safemath.ParseAmount(m.Amount)
}

var _ treasury.Msg = (*RecoverLegacyTokenMsg)(nil)

// RecoverLegacyTokenMsg transfers an amount of a token that does not report
// the transfer result. The operation succeeds even if the token declined
// the transfer.
type RecoverLegacyTokenMsg struct {
	Token treasury.Address `protobuf:"bytes,1,opt,name=token,proto3,casttype=github.com/iov-one/treasury.Address" json:"token,omitempty"`
	To    treasury.Address `protobuf:"bytes,2,opt,name=to,proto3,casttype=github.com/iov-one/treasury.Address" json:"to,omitempty"`
	// Amount is a decimal representation of the amount.
	Amount string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RecoverLegacyTokenMsg) Reset()         { *m = RecoverLegacyTokenMsg{} }
func (m *RecoverLegacyTokenMsg) String() string { return proto.CompactTextString(m) }
func (*RecoverLegacyTokenMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (RecoverLegacyTokenMsg) Path() string {
	return "sweep/recover_legacy"
}

// Validate ensures the message is well formed.
func (m *RecoverLegacyTokenMsg) Validate() error {
	return validateRecovery(m.Token, m.To, m.Amount)
}

// Value returns the recovered amount.
func (m *RecoverLegacyTokenMsg) Value() (*uint256.Int, error) {
	return safemath.ParseAmount(m.Amount)
}

var _ treasury.Msg = (*RecoverNativeMsg)(nil)

// RecoverNativeMsg transfers an amount of the native asset held by the
// vault.
type RecoverNativeMsg struct {
	To treasury.Address `protobuf:"bytes,1,opt,name=to,proto3,casttype=github.com/iov-one/treasury.Address" json:"to,omitempty"`
	// Amount is a decimal representation of the amount.
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RecoverNativeMsg) Reset()         { *m = RecoverNativeMsg{} }
func (m *RecoverNativeMsg) String() string { return proto.CompactTextString(m) }
func (*RecoverNativeMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (RecoverNativeMsg) Path() string {
	return "sweep/recover_native"
}

// Validate ensures the message is well formed.
func (m *RecoverNativeMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if _, err := m.Value(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

// Value returns the recovered amount.
func (m *RecoverNativeMsg) Value() (*uint256.Int, error) {
	return safemath.ParseAmount(m.Amount)
}

func validateRecovery(token, to treasury.Address, amount string) error {
	if err := token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if _, err := safemath.ParseAmount(amount); err != nil {
		return errors.Wrap(err, "amount")
	}
	return nil
}

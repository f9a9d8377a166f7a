package swap

import (
	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
)

var _ treasury.Msg = (*SwapViaNativeMsg)(nil)

// SwapViaNativeMsg converts primary tokens into the target token through
// the native asset.
type SwapViaNativeMsg struct {
	// AmountIn is a decimal representation of the primary token amount.
	AmountIn string           `protobuf:"bytes,1,opt,name=amount_in,json=amountIn,proto3" json:"amount_in,omitempty"`
	Target   treasury.Address `protobuf:"bytes,2,opt,name=target,proto3,casttype=github.com/iov-one/treasury.Address" json:"target,omitempty"`
}

func (m *SwapViaNativeMsg) Reset()         { *m = SwapViaNativeMsg{} }
func (m *SwapViaNativeMsg) String() string { return proto.CompactTextString(m) }
func (*SwapViaNativeMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (SwapViaNativeMsg) Path() string {
	return "swap/via_native"
}

// Validate ensures the message is well formed.
func (m *SwapViaNativeMsg) Validate() error {
	return validateSwap(m.AmountIn, m.Target)
}

var _ treasury.Msg = (*SwapViaStableMsg)(nil)

// SwapViaStableMsg converts primary tokens into the target token through
// the stable token.
type SwapViaStableMsg struct {
	// AmountIn is a decimal representation of the primary token amount.
	AmountIn string           `protobuf:"bytes,1,opt,name=amount_in,json=amountIn,proto3" json:"amount_in,omitempty"`
	Target   treasury.Address `protobuf:"bytes,2,opt,name=target,proto3,casttype=github.com/iov-one/treasury.Address" json:"target,omitempty"`
}

func (m *SwapViaStableMsg) Reset()         { *m = SwapViaStableMsg{} }
func (m *SwapViaStableMsg) String() string { return proto.CompactTextString(m) }
func (*SwapViaStableMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (SwapViaStableMsg) Path() string {
	return "swap/via_stable"
}

// Validate ensures the message is well formed.
func (m *SwapViaStableMsg) Validate() error {
	return validateSwap(m.AmountIn, m.Target)
}

func validateSwap(amountIn string, target treasury.Address) error {
	amount, err := safemath.ParseAmount(amountIn)
	if err != nil {
		return errors.Wrap(err, "amount in")
	}
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "amount in must be positive")
	}
	if err := target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	return nil
}

func parseAmountIn(s string) *uint256.Int {
	// Validated when the message was loaded.
	return safemath.MustParseAmount(s)
}

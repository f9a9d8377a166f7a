package token

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
	"github.com/iov-one/treasury/safemath"
)

// MaxFeeBasisPoints is the highest transfer fee a token can charge. It
// is less than 100% so that a transfer always delivers something.
const MaxFeeBasisPoints = 9999

var isTicker = regexp.MustCompile(`^[A-Z0-9]{3,8}$`).MatchString

// TokenInfo describes a registered token.
type TokenInfo struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	// Legacy tokens do not report the transfer result.
	Legacy bool `protobuf:"varint,2,opt,name=legacy,proto3" json:"legacy,omitempty"`
	// FeeBasisPoints is the part of every transfer that is burned instead
	// of being delivered, in 1/10000.
	FeeBasisPoints uint32 `protobuf:"varint,3,opt,name=fee_basis_points,json=feeBasisPoints,proto3" json:"fee_basis_points,omitempty"`
}

func (m *TokenInfo) Reset()         { *m = TokenInfo{} }
func (m *TokenInfo) String() string { return proto.CompactTextString(m) }
func (*TokenInfo) ProtoMessage()    {}

// Validate ensures the token info is valid.
func (m *TokenInfo) Validate() error {
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrModel, "invalid ticker %q", m.Ticker)
	}
	if m.FeeBasisPoints > MaxFeeBasisPoints {
		return errors.Wrapf(errors.ErrModel, "fee of %d basis points", m.FeeBasisPoints)
	}
	return nil
}

// Balance is the amount of a token an address holds.
type Balance struct {
	Amount []byte `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()    {}

// Validate ensures the amount is encoded correctly.
func (m *Balance) Validate() error {
	_, err := safemath.DecodeAmount(m.Amount)
	return err
}

// Allowance is the amount of a token a spender may move on behalf of an
// owner.
type Allowance struct {
	Amount []byte `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Allowance) Reset()         { *m = Allowance{} }
func (m *Allowance) String() string { return proto.CompactTextString(m) }
func (*Allowance) ProtoMessage()    {}

// Validate ensures the amount is encoded correctly.
func (m *Allowance) Validate() error {
	_, err := safemath.DecodeAmount(m.Amount)
	return err
}

// NativeAsset is the address of the native asset of the environment. It is
// always registered and never charges a fee.
var NativeAsset = treasury.NewCondition("token", "native", []byte("native")).Address()

var nativeInfo = TokenInfo{Ticker: "NATIVE"}

// Registry stores the information about every known token.
type Registry struct {
	bucket orm.ModelBucket
}

// NewRegistry returns a registry instance.
func NewRegistry() *Registry {
	return &Registry{bucket: orm.NewModelBucket("tokeninfo", &TokenInfo{})}
}

// Register stores the information of a new token. A token cannot be
// registered twice.
func (r *Registry) Register(db treasury.KVStore, addr treasury.Address, info *TokenInfo) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "token address")
	}
	if addr.Equals(NativeAsset) {
		return errors.Wrap(errors.ErrDuplicate, "native asset is always registered")
	}
	switch err := r.bucket.Has(db, addr); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "token %s", addr)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return r.bucket.Put(db, addr, info)
}

// Info returns the information about a registered token.
func (r *Registry) Info(db treasury.ReadOnlyKVStore, addr treasury.Address) (*TokenInfo, error) {
	if addr.Equals(NativeAsset) {
		info := nativeInfo
		return &info, nil
	}
	var info TokenInfo
	if err := r.bucket.One(db, addr, &info); err != nil {
		return nil, errors.Wrapf(err, "token %s", addr)
	}
	return &info, nil
}

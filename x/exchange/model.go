package exchange

import (
	"bytes"

	"github.com/gogo/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
	"github.com/iov-one/treasury/safemath"
)

// Pair holds the reserves of two tokens. Tokens are sorted.
type Pair struct {
	Token0   treasury.Address `protobuf:"bytes,1,opt,name=token0,proto3,casttype=github.com/iov-one/treasury.Address" json:"token0,omitempty"`
	Token1   treasury.Address `protobuf:"bytes,2,opt,name=token1,proto3,casttype=github.com/iov-one/treasury.Address" json:"token1,omitempty"`
	Reserve0 []byte           `protobuf:"bytes,3,opt,name=reserve0,proto3" json:"reserve0,omitempty"`
	Reserve1 []byte           `protobuf:"bytes,4,opt,name=reserve1,proto3" json:"reserve1,omitempty"`
}

func (m *Pair) Reset()         { *m = Pair{} }
func (m *Pair) String() string { return proto.CompactTextString(m) }
func (*Pair) ProtoMessage()    {}

// Validate ensures the pair tokens are valid, distinct and sorted.
func (m *Pair) Validate() error {
	if err := m.Token0.Validate(); err != nil {
		return errors.Wrap(err, "token0")
	}
	if err := m.Token1.Validate(); err != nil {
		return errors.Wrap(err, "token1")
	}
	if bytes.Compare(m.Token0, m.Token1) >= 0 {
		return errors.Wrap(errors.ErrModel, "tokens must be distinct and sorted")
	}
	if _, err := safemath.DecodeAmount(m.Reserve0); err != nil {
		return errors.Wrap(err, "reserve0")
	}
	if _, err := safemath.DecodeAmount(m.Reserve1); err != nil {
		return errors.Wrap(err, "reserve1")
	}
	return nil
}

// Address returns the address holding the pair liquidity.
func (m *Pair) Address() treasury.Address {
	return PairAddress(m.Token0, m.Token1)
}

// Reserves returns the reserves of given token and of the other one.
func (m *Pair) Reserves(input treasury.Address) (in, out *uint256.Int, err error) {
	r0, err := safemath.DecodeAmount(m.Reserve0)
	if err != nil {
		return nil, nil, err
	}
	r1, err := safemath.DecodeAmount(m.Reserve1)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case input.Equals(m.Token0):
		return r0, r1, nil
	case input.Equals(m.Token1):
		return r1, r0, nil
	}
	return nil, nil, errors.Wrapf(ErrNoPair, "%s not in pair", input)
}

// sortTokens returns both tokens in the order they are stored in a pair.
func sortTokens(a, b treasury.Address) (treasury.Address, treasury.Address, error) {
	switch c := bytes.Compare(a, b); {
	case c < 0:
		return a, b, nil
	case c > 0:
		return b, a, nil
	}
	return nil, nil, errors.Wrap(errors.ErrInput, "identical tokens")
}

// PairAddress returns the address holding the liquidity of two tokens.
func PairAddress(a, b treasury.Address) treasury.Address {
	t0, t1, err := sortTokens(a, b)
	if err != nil {
		return nil
	}
	return treasury.NewCondition("exchange", "pair", pairKey(t0, t1)).Address()
}

func pairKey(t0, t1 treasury.Address) []byte {
	return append(append([]byte(nil), t0...), t1...)
}

// PairBucket stores the pairs.
type PairBucket struct {
	orm.ModelBucket
}

// NewPairBucket returns a bucket for pairs.
func NewPairBucket() *PairBucket {
	return &PairBucket{ModelBucket: orm.NewModelBucket("pair", &Pair{})}
}

// Get returns the pair of two tokens, in any order.
func (b *PairBucket) Get(db treasury.ReadOnlyKVStore, a, c treasury.Address) (*Pair, error) {
	t0, t1, err := sortTokens(a, c)
	if err != nil {
		return nil, err
	}
	var p Pair
	switch err := b.One(db, pairKey(t0, t1), &p); {
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoPair, "%s/%s", a, c)
	case err != nil:
		return nil, err
	}
	return &p, nil
}

// Save stores the pair.
func (b *PairBucket) Save(db treasury.KVStore, p *Pair) error {
	return b.Put(db, pairKey(p.Token0, p.Token1), p)
}

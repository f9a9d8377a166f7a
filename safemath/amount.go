package safemath

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury/errors"
)

// amountSize is the length of the binary representation of an amount.
const amountSize = 32

// ParseAmount decodes a base 10 representation of an amount.
func ParseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.Wrap(errors.ErrAmount, "empty")
	}
	z := new(uint256.Int)
	if err := z.SetFromDecimal(s); err != nil {
		return nil, errors.Wrapf(errors.ErrAmount, "%q: %s", s, err)
	}
	return z, nil
}

// MustParseAmount is like ParseAmount but panics on invalid input. Use it
// only with constant values.
func MustParseAmount(s string) *uint256.Int {
	z, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return z
}

// NewAmount returns an amount of given value.
func NewAmount(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

// EncodeAmount returns the fixed size, big endian representation of an
// amount. A nil amount is encoded as zero.
func EncodeAmount(a *uint256.Int) []byte {
	if a == nil {
		a = Zero()
	}
	raw := a.Bytes32()
	return raw[:]
}

// DecodeAmount reads an amount encoded with EncodeAmount. An empty value
// decodes to zero.
func DecodeAmount(raw []byte) (*uint256.Int, error) {
	if len(raw) == 0 {
		return Zero(), nil
	}
	if len(raw) != amountSize {
		return nil, errors.Wrapf(errors.ErrAmount, "invalid encoding length %d", len(raw))
	}
	return new(uint256.Int).SetBytes(raw), nil
}

package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/treasury/errors"
)

// Decode splits a bech32 string into its human readable prefix and the
// 8-bit payload. Malformed input fails with ErrInput.
func Decode(s string) (hrp string, payload []byte, err error) {
	hrp, groups, err := bech32.Decode(s)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 %q: %s", s, err)
	}
	payload, err = bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	return hrp, payload, nil
}

// Encode returns the bech32 form of payload under given prefix.
func Encode(hrp string, payload []byte) ([]byte, error) {
	groups, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 payload: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 prefix %q: %s", hrp, err)
	}
	return []byte(s), nil
}

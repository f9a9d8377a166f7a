package treasury_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexademical address printing", t, func() {
		b := []byte("ABCD123456LHB")
		addr := treasury.Address(b)

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", b))
		So(treasury.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexademical condition printing", t, func() {
		cond := treasury.NewCondition("schedule", "vault", []byte("treasury"))

		So(cond.String(), ShouldEqual, "schedule/vault/7472656173757279")
		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", cond))
	})
}

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    treasury.Condition
		ext     string
		typ     string
		data    []byte
		wantErr *errors.Error
	}{
		"vault": {
			cond: treasury.NewCondition("schedule", "vault", []byte("treasury")),
			ext:  "schedule",
			typ:  "vault",
			data: []byte("treasury"),
		},
		"data with newline": {
			cond: treasury.NewCondition("exchange", "pair", []byte{0x20, '\n', 0x01}),
			ext:  "exchange",
			typ:  "pair",
			data: []byte{0x20, '\n', 0x01},
		},
		"extension too short": {
			cond:    treasury.NewCondition("ex", "pair", []byte{1}),
			wantErr: errors.ErrInput,
		},
		"missing data": {
			cond:    treasury.Condition("exchange/pair/"),
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			require.True(t, tc.wantErr.Is(tc.cond.Validate()))
			assert.Equal(t, tc.ext, ext)
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.data, data)
		})
	}
}

func TestParseAddress(t *testing.T) {
	vault := treasury.NewCondition("schedule", "vault", []byte("treasury")).Address()
	bech, err := vault.Bech32("trs")
	require.NoError(t, err)

	cases := map[string]struct {
		enc     string
		want    treasury.Address
		wantErr *errors.Error
	}{
		"hex": {
			enc:  "7000000000000000000000000000000000000001",
			want: treasury.Address{0x70, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
		"prefixed hex": {
			enc:  "hex:0x7000000000000000000000000000000000000001",
			want: treasury.Address{0x70, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
		"printed address": {
			enc:  vault.String(),
			want: vault,
		},
		"bech32": {
			enc:  "bech32:" + bech,
			want: vault,
		},
		"condition": {
			enc:  "cond:schedule/vault/7472656173757279",
			want: vault,
		},
		"malformed condition": {
			enc:     "cond:schedule/7472656173757279",
			wantErr: errors.ErrInput,
		},
		"invalid hex": {
			enc:     "not hex",
			wantErr: errors.ErrInvalidAddress,
		},
		"too short": {
			enc:     "7001",
			wantErr: errors.ErrInvalidAddress,
		},
		"zero address": {
			enc:     "0000000000000000000000000000000000000000",
			wantErr: errors.ErrInvalidAddress,
		},
		"unknown format": {
			enc:     "base64:cAAAAAAAAAAAAAAAAAAAAAAAAAE=",
			wantErr: errors.ErrInvalidAddress,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := treasury.ParseAddress(tc.enc)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			assert.Equal(t, tc.want, got)

			var flagged treasury.Address
			err = flagged.Set(tc.enc)
			require.True(t, tc.wantErr.Is(err), "unexpected flag error: %+v", err)
			assert.Equal(t, tc.want, flagged)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	vault := treasury.NewCondition("schedule", "vault", []byte("treasury")).Address()

	raw, err := json.Marshal(vault)
	require.NoError(t, err)
	assert.Equal(t, `"`+vault.String()+`"`, string(raw))

	var got treasury.Address
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, vault.Equals(got))

	require.NoError(t, json.Unmarshal([]byte(`"cond:schedule/vault/7472656173757279"`), &got))
	assert.True(t, vault.Equals(got))

	require.NoError(t, json.Unmarshal([]byte(`""`), &got))
	assert.Nil(t, got)

	err = json.Unmarshal([]byte(`"0000000000000000000000000000000000000000"`), &got)
	assert.True(t, errors.ErrInvalidAddress.Is(err))
}

func TestAddressValidate(t *testing.T) {
	assert.True(t, errors.ErrInvalidAddress.Is(treasury.Address(nil).Validate()))
	assert.True(t, errors.ErrInvalidAddress.Is(treasury.Address{1, 2, 3}.Validate()))
	assert.True(t, errors.ErrInvalidAddress.Is(make(treasury.Address, treasury.AddressLength).Validate()))
	assert.NoError(t, treasury.NewAddress([]byte("anything")).Validate())

	a := treasury.NewAddress([]byte("anything"))
	c := a.Clone()
	c[0]++
	assert.False(t, a.Equals(c))
}

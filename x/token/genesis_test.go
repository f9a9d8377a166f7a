package token

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestGenesis(t *testing.T) {
	tok := treasurytest.NewAddress()
	holder := treasurytest.NewAddress()

	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
	}{
		"valid": {
			raw: fmt.Sprintf(`{
				"tokens": [{"address": "%s", "ticker": "PRIM", "balances": [{"owner": "%s", "amount": "1000000000000000000000"}]}],
				"native": [{"owner": "%s", "amount": "7"}]
			}`, tok, holder, holder),
		},
		"invalid amount": {
			raw:     fmt.Sprintf(`{"tokens": [{"address": "%s", "ticker": "PRIM", "balances": [{"owner": "%s", "amount": "-1"}]}]}`, tok, holder),
			wantErr: errors.ErrAmount,
		},
		"duplicated token": {
			raw:     fmt.Sprintf(`{"tokens": [{"address": "%s", "ticker": "PRIM"}, {"address": "%s", "ticker": "SEC"}]}`, tok, tok),
			wantErr: errors.ErrDuplicate,
		},
		"invalid ticker": {
			raw:     fmt.Sprintf(`{"tokens": [{"address": "%s", "ticker": "p"}]}`, tok),
			wantErr: errors.ErrModel,
		},
		"empty": {
			raw: `{}`,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts treasury.Options
			if err := json.Unmarshal([]byte(tc.raw), &opts); err != nil {
				t.Fatalf("cannot decode: %s", err)
			}
			db := store.MemStore()
			l := NewLedger(NewRegistry())
			init := &Initializer{Ledger: l}
			err := init.FromGenesis(opts, treasury.GenesisParams{}, db)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil || testName != "valid" {
				return
			}
			got, err := l.BalanceOf(db, tok, holder)
			assert.Nil(t, err)
			assert.AmountEqual(t, safemath.MustParseAmount("1000000000000000000000"), got)
			got, err = l.BalanceOf(db, NativeAsset, holder)
			assert.Nil(t, err)
			assert.AmountEqual(t, safemath.NewAmount(7), got)
		})
	}
}

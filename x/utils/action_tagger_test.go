package utils

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestActionTagger(t *testing.T) {
	existing := common.KVPair{Key: []byte("foo"), Value: []byte("bar")}

	cases := map[string]struct {
		handler  *treasurytest.Handler
		path     string
		wantErr  *errors.Error
		wantTags []common.KVPair
	}{
		"simple tagging": {
			handler:  &treasurytest.Handler{},
			path:     "schedule/advance",
			wantTags: []common.KVPair{{Key: []byte(ActionKey), Value: []byte("schedule/advance")}},
		},
		"tags appended": {
			handler: &treasurytest.Handler{Tags: []common.KVPair{existing}},
			path:    "sweep/recover",
			wantTags: []common.KVPair{
				existing,
				{Key: []byte(ActionKey), Value: []byte("sweep/recover")},
			},
		},
		"no tags on error": {
			handler: &treasurytest.Handler{DeliverErr: errors.ErrUnauthorized},
			path:    "swap/native",
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			tx := treasury.NewTx(&treasurytest.Msg{RoutePath: tc.path})
			res, err := NewActionTagger().Deliver(context.Background(), store.MemStore(), tx, tc.handler)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantTags, res.Tags)
		})
	}
}

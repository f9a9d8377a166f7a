package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  *treasurytest.Handler
		wantErr  *errors.Error
		wantLine []string
	}{
		"success": {
			handler:  &treasurytest.Handler{},
			wantLine: []string{"I[", "path=schedule/advance", "took_us="},
		},
		"failure": {
			handler:  &treasurytest.Handler{DeliverErr: errors.ErrUnauthorized},
			wantErr:  errors.ErrUnauthorized,
			wantLine: []string{"E[", "deliver failed", "path=schedule/advance"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := treasury.WithLogger(context.Background(), log.NewTMLogger(&buf))
			tx := treasury.NewTx(&treasurytest.Msg{RoutePath: "schedule/advance"})

			_, err := NewLogging().Deliver(ctx, store.MemStore(), tx, tc.handler)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, 1, tc.handler.CallCount())

			out := buf.String()
			for _, want := range tc.wantLine {
				if !strings.Contains(out, want) {
					t.Errorf("want %q in log output %q", want, out)
				}
			}
		})
	}
}

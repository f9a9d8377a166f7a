package x

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
)

func TestAuth(t *testing.T) {
	a := treasurytest.NewAddress()
	b := treasurytest.NewAddress()
	c := treasurytest.NewAddress()

	ctx1 := &treasurytest.CtxAuth{Key: "foo"}
	ctx2 := &treasurytest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          treasury.Context
		auth         Authenticator
		mainCaller   treasury.Address
		wantInCtx    treasury.Address
		wantNotInCtx treasury.Address
		wantAll      []treasury.Address
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &treasurytest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &treasurytest.Auth{Signer: a},
			mainCaller:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []treasury.Address{a},
		},
		"ctxAuth checks what is set by same key": {
			ctx:          ctx1.SetAddresses(context.Background(), a, b),
			auth:         ctx1,
			mainCaller:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []treasury.Address{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetAddresses(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
		"caller auth": {
			ctx:          WithCaller(context.Background(), c),
			auth:         CallerAuth{},
			mainCaller:   c,
			wantInCtx:    c,
			wantNotInCtx: a,
			wantAll:      []treasury.Address{c},
		},
		"caller auth without a caller": {
			ctx:          context.Background(),
			auth:         CallerAuth{},
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainCaller, MainCaller(tc.ctx, tc.auth))
			if tc.wantInCtx != nil && !tc.auth.HasAddress(tc.ctx, tc.wantInCtx) {
				t.Fatal("address that was expected in context not found")
			}
			if tc.wantNotInCtx != nil && tc.auth.HasAddress(tc.ctx, tc.wantNotInCtx) {
				t.Fatal("address that was expected not to be in context found")
			}
			assert.Equal(t, tc.wantAll, tc.auth.GetAddresses(tc.ctx))
		})
	}
}

func TestWithCallerOnlyOnce(t *testing.T) {
	ctx := WithCaller(context.Background(), treasurytest.NewAddress())
	assert.Panics(t, func() {
		WithCaller(ctx, treasurytest.NewAddress())
	})
}

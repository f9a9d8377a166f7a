package swap

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

// TagTarget is the key of the tag announcing the bought token.
const TagTarget = "swap.target"

// Exchange routes swaps along a path of tokens. The sender must approve the
// exchange before selling tokens.
type Exchange interface {
	SwapExactTokensForTokens(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, amountIn, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error
	SwapExactTokensForNative(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, amountIn, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error
	// SwapExactNativeForTokens spends value of the native asset paid by
	// the sender.
	SwapExactNativeForTokens(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, value, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error
}

// Treasury provides the funds being swapped.
type Treasury interface {
	PrimaryToken(db treasury.ReadOnlyKVStore) (treasury.Address, error)
	Vault() treasury.Address
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r treasury.Registry, authorize x.Authorizer, tokens token.Tokens, ex Exchange, t Treasury) {
	r.Handle(&SwapViaNativeMsg{}, SwapViaNativeHandler{authorize: authorize, tokens: tokens, exchange: ex, treasury: t})
	r.Handle(&SwapViaStableMsg{}, SwapViaStableHandler{authorize: authorize, tokens: tokens, exchange: ex, treasury: t})
}

// route is the part of a swap common to both variants.
type route struct {
	conf     *Configuration
	primary  treasury.Address
	vault    treasury.Address
	deadline treasury.UnixTime
}

func loadRoute(ctx treasury.Context, db treasury.ReadOnlyKVStore, t Treasury) (*route, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	primary, err := t.PrimaryToken(db)
	if err != nil {
		return nil, errors.Wrap(err, "primary token")
	}
	deadline, err := conf.Deadline(treasury.Now(ctx))
	if err != nil {
		return nil, err
	}
	return &route{conf: conf, primary: primary, vault: t.Vault(), deadline: deadline}, nil
}

// SwapViaNativeHandler sells primary tokens for the native asset and the
// native asset for the target token.
type SwapViaNativeHandler struct {
	authorize x.Authorizer
	tokens    token.Tokens
	exchange  Exchange
	treasury  Treasury
}

var _ treasury.Handler = SwapViaNativeHandler{}

// Deliver executes both legs if the caller is the controller.
func (h SwapViaNativeHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg SwapViaNativeMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	rt, err := loadRoute(ctx, db, h.treasury)
	if err != nil {
		return nil, err
	}
	firstMin, secondMin, err := rt.conf.floors(rt.conf.NativeFirstMin, rt.conf.NativeSecondMin)
	if err != nil {
		return nil, err
	}
	amountIn := parseAmountIn(msg.AmountIn)

	if err := token.SafeApprove(ctx, db, h.tokens.Token(rt.primary), rt.vault, rt.conf.Router, amountIn); err != nil {
		return nil, errors.Wrap(err, "first leg")
	}
	path := []treasury.Address{rt.primary, rt.conf.WrappedNative}
	if err := h.exchange.SwapExactTokensForNative(ctx, db, rt.vault, amountIn, firstMin, path, rt.vault, rt.deadline); err != nil {
		return nil, errors.Wrap(err, "first leg")
	}

	native, err := h.tokens.Token(token.NativeAsset).BalanceOf(db, rt.vault)
	if err != nil {
		return nil, errors.Wrap(err, "native balance")
	}
	path = []treasury.Address{rt.conf.WrappedNative, msg.Target}
	if err := h.exchange.SwapExactNativeForTokens(ctx, db, rt.vault, native, secondMin, path, rt.vault, rt.deadline); err != nil {
		return nil, errors.Wrap(err, "second leg")
	}

	treasury.GetLogger(ctx).Info("swapped via native", "amount_in", msg.AmountIn, "native", native.Dec(), "target", msg.Target)
	return swapped(msg.Target), nil
}

// SwapViaStableHandler sells primary tokens for the stable token and the
// stable token for the target token.
type SwapViaStableHandler struct {
	authorize x.Authorizer
	tokens    token.Tokens
	exchange  Exchange
	treasury  Treasury
}

var _ treasury.Handler = SwapViaStableHandler{}

// Deliver executes both legs if the caller is the controller.
func (h SwapViaStableHandler) Deliver(ctx treasury.Context, db treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	if err := h.authorize(ctx, db); err != nil {
		return nil, err
	}
	var msg SwapViaStableMsg
	if err := treasury.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	rt, err := loadRoute(ctx, db, h.treasury)
	if err != nil {
		return nil, err
	}
	firstMin, secondMin, err := rt.conf.floors(rt.conf.StableFirstMin, rt.conf.StableSecondMin)
	if err != nil {
		return nil, err
	}
	amountIn := parseAmountIn(msg.AmountIn)

	if err := token.SafeApprove(ctx, db, h.tokens.Token(rt.primary), rt.vault, rt.conf.Router, amountIn); err != nil {
		return nil, errors.Wrap(err, "first leg")
	}
	path := []treasury.Address{rt.primary, rt.conf.Stable}
	if err := h.exchange.SwapExactTokensForTokens(ctx, db, rt.vault, amountIn, firstMin, path, rt.vault, rt.deadline); err != nil {
		return nil, errors.Wrap(err, "first leg")
	}

	stable := h.tokens.Token(rt.conf.Stable)
	held, err := stable.BalanceOf(db, rt.vault)
	if err != nil {
		return nil, errors.Wrap(err, "stable balance")
	}
	if err := token.SafeApprove(ctx, db, stable, rt.vault, rt.conf.Router, held); err != nil {
		return nil, errors.Wrap(err, "second leg")
	}
	path = []treasury.Address{rt.conf.Stable, msg.Target}
	if err := h.exchange.SwapExactTokensForTokens(ctx, db, rt.vault, held, secondMin, path, rt.vault, rt.deadline); err != nil {
		return nil, errors.Wrap(err, "second leg")
	}

	treasury.GetLogger(ctx).Info("swapped via stable", "amount_in", msg.AmountIn, "stable", held.Dec(), "target", msg.Target)
	return swapped(msg.Target), nil
}

func swapped(target treasury.Address) *treasury.DeliverResult {
	return &treasury.DeliverResult{
		Log:  "swapped",
		Tags: []common.KVPair{{Key: []byte(TagTarget), Value: []byte(target.String())}},
	}
}

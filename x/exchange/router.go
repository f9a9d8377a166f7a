package exchange

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/safemath"
	"github.com/iov-one/treasury/x/token"
)

// RouterAddress is the address the exchange spends approved funds as.
var RouterAddress = treasury.NewCondition("exchange", "router", []byte("router")).Address()

var (
	feeNumerator   = safemath.NewAmount(997)
	feeDenominator = safemath.NewAmount(1000)
)

// Ledger is the token ledger the exchange operates on. Mint and Burn are
// used to wrap and unwrap the native asset.
type Ledger interface {
	token.Tokens
	Mint(db treasury.KVStore, token, owner treasury.Address, amount *uint256.Int) error
	Burn(db treasury.KVStore, token, owner treasury.Address, amount *uint256.Int) error
}

// Router executes swaps along a path of pairs.
type Router struct {
	ledger Ledger
	pairs  *PairBucket
}

// NewRouter returns a router trading tokens of given ledger.
func NewRouter(ledger Ledger, pairs *PairBucket) *Router {
	return &Router{ledger: ledger, pairs: pairs}
}

// Address returns the address that must be approved to spend the swapped
// funds.
func (r *Router) Address() treasury.Address {
	return RouterAddress
}

// WrappedNative returns the address of the wrapped native token.
func (r *Router) WrappedNative(db treasury.ReadOnlyKVStore) (treasury.Address, error) {
	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}
	return conf.WrappedNative, nil
}

// GetAmountOut returns the output of a swap of amountIn given the pair
// reserves, after the 0.3% fee.
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	if amountIn.IsZero() {
		return nil, errors.Wrap(errors.ErrAmount, "insufficient input amount")
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, errors.Wrap(errors.ErrState, "insufficient liquidity")
	}
	inWithFee, err := safemath.Mul(amountIn, feeNumerator)
	if err != nil {
		return nil, err
	}
	num, err := safemath.Mul(inWithFee, reserveOut)
	if err != nil {
		return nil, err
	}
	den, err := safemath.Mul(reserveIn, feeDenominator)
	if err != nil {
		return nil, err
	}
	if den, err = safemath.Add(den, inWithFee); err != nil {
		return nil, err
	}
	return safemath.Div(num, den)
}

// GetAmountsOut returns the output of every hop of a swap along the path,
// assuming no transfer fees.
func (r *Router) GetAmountsOut(db treasury.ReadOnlyKVStore, amountIn *uint256.Int, path []treasury.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, errors.Wrap(errors.ErrInput, "path too short")
	}
	amounts := []*uint256.Int{amountIn}
	for i := 0; i < len(path)-1; i++ {
		p, err := r.pairs.Get(db, path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		rIn, rOut, err := p.Reserves(path[i])
		if err != nil {
			return nil, err
		}
		out, err := GetAmountOut(amounts[i], rIn, rOut)
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i)
		}
		amounts = append(amounts, out)
	}
	return amounts, nil
}

// CreatePair creates a pair of two tokens and mints its initial liquidity.
// The configuration must be stored before any pair is created.
func (r *Router) CreatePair(db treasury.KVStore, a, b treasury.Address, amountA, amountB *uint256.Int) (*Pair, error) {
	t0, t1, err := sortTokens(a, b)
	if err != nil {
		return nil, err
	}
	switch _, err := r.pairs.Get(db, t0, t1); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "pair %s/%s", t0, t1)
	case !ErrNoPair.Is(err):
		return nil, err
	}
	wrapped, err := r.WrappedNative(db)
	if err != nil {
		return nil, err
	}
	pair := &Pair{Token0: t0, Token1: t1}
	addr := pair.Address()
	for _, l := range []struct {
		token  treasury.Address
		amount *uint256.Int
	}{{a, amountA}, {b, amountB}} {
		if err := r.ledger.Mint(db, l.token, addr, l.amount); err != nil {
			return nil, errors.Wrap(err, "liquidity")
		}
		// Wrapped supply is always backed by the native asset.
		if l.token.Equals(wrapped) {
			if err := r.ledger.Mint(db, token.NativeAsset, wrapped, l.amount); err != nil {
				return nil, errors.Wrap(err, "native backing")
			}
		}
	}
	if err := r.sync(db, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

// SwapExactTokensForTokens swaps amountIn of the first path token, taken
// from sender with the router allowance, for the last path token sent to
// the recipient.
func (r *Router) SwapExactTokensForTokens(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, amountIn, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error {
	if err := ensure(ctx, deadline); err != nil {
		return err
	}
	if err := r.checkPath(db, path); err != nil {
		return err
	}
	first := PairAddress(path[0], path[1])
	if err := r.transferFrom(ctx, db, path[0], sender, first, amountIn); err != nil {
		return err
	}
	return r.swapChecked(ctx, db, path, to, amountOutMin)
}

// SwapExactTokensForNative swaps amountIn of the first path token for the
// native asset. The path must end with the wrapped native token.
func (r *Router) SwapExactTokensForNative(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, amountIn, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error {
	if err := ensure(ctx, deadline); err != nil {
		return err
	}
	if err := r.checkPath(db, path); err != nil {
		return err
	}
	wrapped, err := r.WrappedNative(db)
	if err != nil {
		return err
	}
	if !path[len(path)-1].Equals(wrapped) {
		return errors.Wrap(errors.ErrInput, "path must end with the wrapped native token")
	}
	first := PairAddress(path[0], path[1])
	if err := r.transferFrom(ctx, db, path[0], sender, first, amountIn); err != nil {
		return err
	}
	if err := r.swap(ctx, db, path, RouterAddress); err != nil {
		return err
	}
	out, err := r.ledger.Token(wrapped).BalanceOf(db, RouterAddress)
	if err != nil {
		return err
	}
	if out.Lt(amountOutMin) {
		return errors.Wrapf(ErrInsufficientOutput, "%s below %s", out.Dec(), amountOutMin.Dec())
	}
	return r.unwrap(ctx, db, wrapped, out, to)
}

// SwapExactNativeForTokens swaps value of the native asset, paid by the
// sender, for the last path token. The path must start with the wrapped
// native token.
func (r *Router) SwapExactNativeForTokens(ctx treasury.Context, db treasury.KVStore, sender treasury.Address, value, amountOutMin *uint256.Int, path []treasury.Address, to treasury.Address, deadline treasury.UnixTime) error {
	if err := ensure(ctx, deadline); err != nil {
		return err
	}
	if err := r.checkPath(db, path); err != nil {
		return err
	}
	wrapped, err := r.WrappedNative(db)
	if err != nil {
		return err
	}
	if !path[0].Equals(wrapped) {
		return errors.Wrap(errors.ErrInput, "path must start with the wrapped native token")
	}
	if err := r.wrap(ctx, db, wrapped, sender, value, PairAddress(path[0], path[1])); err != nil {
		return err
	}
	return r.swapChecked(ctx, db, path, to, amountOutMin)
}

// swapChecked swaps along the path and ensures the recipient received at
// least amountOutMin of the last token.
func (r *Router) swapChecked(ctx treasury.Context, db treasury.KVStore, path []treasury.Address, to treasury.Address, amountOutMin *uint256.Int) error {
	out := r.ledger.Token(path[len(path)-1])
	before, err := out.BalanceOf(db, to)
	if err != nil {
		return err
	}
	if err := r.swap(ctx, db, path, to); err != nil {
		return err
	}
	after, err := out.BalanceOf(db, to)
	if err != nil {
		return err
	}
	received, err := safemath.Sub(after, before)
	if err != nil {
		return errors.Wrap(err, "received amount")
	}
	if received.Lt(amountOutMin) {
		return errors.Wrapf(ErrInsufficientOutput, "%s below %s", received.Dec(), amountOutMin.Dec())
	}
	return nil
}

// swap executes every hop of the path. Input of each hop is what the pair
// holds above its reserve. The last hop output is sent to the recipient.
func (r *Router) swap(ctx treasury.Context, db treasury.KVStore, path []treasury.Address, to treasury.Address) error {
	for i := 0; i < len(path)-1; i++ {
		input, output := path[i], path[i+1]
		pair, err := r.pairs.Get(db, input, output)
		if err != nil {
			return err
		}
		rIn, rOut, err := pair.Reserves(input)
		if err != nil {
			return err
		}
		held, err := r.ledger.Token(input).BalanceOf(db, pair.Address())
		if err != nil {
			return err
		}
		amountIn, err := safemath.Sub(held, rIn)
		if err != nil {
			return errors.Wrap(err, "pair input")
		}
		amountOut, err := GetAmountOut(amountIn, rIn, rOut)
		if err != nil {
			return errors.Wrapf(err, "hop %d", i)
		}

		recipient := to
		if i < len(path)-2 {
			recipient = PairAddress(output, path[i+2])
		}
		if err := token.SafeTransfer(ctx, db, r.ledger.Token(output), pair.Address(), recipient, amountOut); err != nil {
			return errors.Wrapf(err, "hop %d", i)
		}
		if err := r.sync(db, pair); err != nil {
			return err
		}
		treasury.GetLogger(ctx).Debug("exchange swap", "in", input, "out", output, "amount_in", amountIn.Dec(), "amount_out", amountOut.Dec())
	}
	return nil
}

// sync sets the pair reserves to its balances.
func (r *Router) sync(db treasury.KVStore, pair *Pair) error {
	b0, err := r.ledger.Token(pair.Token0).BalanceOf(db, pair.Address())
	if err != nil {
		return err
	}
	b1, err := r.ledger.Token(pair.Token1).BalanceOf(db, pair.Address())
	if err != nil {
		return err
	}
	pair.Reserve0 = safemath.EncodeAmount(b0)
	pair.Reserve1 = safemath.EncodeAmount(b1)
	return r.pairs.Save(db, pair)
}

func (r *Router) transferFrom(ctx treasury.Context, db treasury.KVStore, tok, from, to treasury.Address, amount *uint256.Int) error {
	ok, err := r.ledger.Token(tok).TransferFrom(ctx, db, RouterAddress, from, to, amount)
	if err != nil {
		return errors.Wrap(err, "transfer from")
	}
	if !ok {
		return errors.Wrapf(token.ErrTransferFailed, "%s of %s from %s", amount.Dec(), tok, from)
	}
	return nil
}

// wrap takes the native asset from the sender and mints the same amount
// of the wrapped token to the recipient.
func (r *Router) wrap(ctx treasury.Context, db treasury.KVStore, wrapped, sender treasury.Address, value *uint256.Int, to treasury.Address) error {
	native := r.ledger.Token(token.NativeAsset)
	if err := token.SafeTransfer(ctx, db, native, sender, wrapped, value); err != nil {
		return errors.Wrap(err, "payment")
	}
	return r.ledger.Mint(db, wrapped, to, value)
}

// unwrap burns the wrapped token held by the router and releases the
// native asset backing it to the recipient.
func (r *Router) unwrap(ctx treasury.Context, db treasury.KVStore, wrapped treasury.Address, amount *uint256.Int, to treasury.Address) error {
	if err := r.ledger.Burn(db, wrapped, RouterAddress, amount); err != nil {
		return errors.Wrap(err, "unwrap")
	}
	native := r.ledger.Token(token.NativeAsset)
	if err := token.SafeTransfer(ctx, db, native, wrapped, to, amount); err != nil {
		return errors.Wrap(err, "unwrap")
	}
	return nil
}

// checkPath ensures a pair exists for every hop of the path.
func (r *Router) checkPath(db treasury.ReadOnlyKVStore, path []treasury.Address) error {
	if len(path) < 2 {
		return errors.Wrap(errors.ErrInput, "path too short")
	}
	for i := 0; i < len(path)-1; i++ {
		if _, err := r.pairs.Get(db, path[i], path[i+1]); err != nil {
			return errors.Wrapf(err, "hop %d", i)
		}
	}
	return nil
}

// ensure fails with ErrExpired if the deadline is before now.
func ensure(ctx treasury.Context, deadline treasury.UnixTime) error {
	if now := treasury.Now(ctx); deadline < now {
		return errors.Wrapf(errors.ErrExpired, "deadline %s passed", deadline)
	}
	return nil
}

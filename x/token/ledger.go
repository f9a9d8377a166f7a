package token

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/orm"
	"github.com/iov-one/treasury/safemath"
)

var feeDenominator = safemath.NewAmount(10000)

// Ledger keeps the balances and allowances of all registered tokens.
type Ledger struct {
	registry   *Registry
	balances   orm.ModelBucket
	allowances orm.ModelBucket
}

var _ Tokens = (*Ledger)(nil)

// NewLedger returns a ledger using given registry to lookup token
// information.
func NewLedger(r *Registry) *Ledger {
	return &Ledger{
		registry:   r,
		balances:   orm.NewModelBucket("balance", &Balance{}),
		allowances: orm.NewModelBucket("allowance", &Allowance{}),
	}
}

// Token returns the checked view of given token. Operations on a token
// registered as legacy fail with ErrType.
func (l *Ledger) Token(addr treasury.Address) Token {
	return &checked{ledger: l, token: addr}
}

// Legacy returns the unchecked view of given token. Any registered token
// can be used through this view.
func (l *Ledger) Legacy(addr treasury.Address) LegacyToken {
	return &legacy{ledger: l, token: addr}
}

// Registry returns the registry used by this ledger.
func (l *Ledger) Registry() *Registry {
	return l.registry
}

// BalanceOf returns the amount of given token held by the owner.
func (l *Ledger) BalanceOf(db treasury.ReadOnlyKVStore, token, owner treasury.Address) (*uint256.Int, error) {
	var b Balance
	switch err := l.balances.One(db, pairKey(token, owner), &b); {
	case err == nil:
		return safemath.DecodeAmount(b.Amount)
	case errors.ErrNotFound.Is(err):
		return safemath.Zero(), nil
	default:
		return nil, err
	}
}

func (l *Ledger) setBalance(db treasury.KVStore, token, owner treasury.Address, amount *uint256.Int) error {
	return l.balances.Put(db, pairKey(token, owner), &Balance{Amount: safemath.EncodeAmount(amount)})
}

// Allowance returns the amount the spender may move on behalf of the owner.
func (l *Ledger) Allowance(db treasury.ReadOnlyKVStore, token, owner, spender treasury.Address) (*uint256.Int, error) {
	var a Allowance
	switch err := l.allowances.One(db, tripleKey(token, owner, spender), &a); {
	case err == nil:
		return safemath.DecodeAmount(a.Amount)
	case errors.ErrNotFound.Is(err):
		return safemath.Zero(), nil
	default:
		return nil, err
	}
}

func (l *Ledger) setAllowance(db treasury.KVStore, token, owner, spender treasury.Address, amount *uint256.Int) error {
	return l.allowances.Put(db, tripleKey(token, owner, spender), &Allowance{Amount: safemath.EncodeAmount(amount)})
}

// Mint creates new funds of a registered token.
func (l *Ledger) Mint(db treasury.KVStore, token, owner treasury.Address, amount *uint256.Int) error {
	if _, err := l.registry.Info(db, token); err != nil {
		return err
	}
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	bal, err := l.BalanceOf(db, token, owner)
	if err != nil {
		return err
	}
	if bal, err = safemath.Add(bal, amount); err != nil {
		return errors.Wrapf(err, "mint %s", amount.Dec())
	}
	return l.setBalance(db, token, owner, bal)
}

// Burn destroys funds of a registered token. It fails with ErrUnderflow if
// the owner does not hold enough.
func (l *Ledger) Burn(db treasury.KVStore, token, owner treasury.Address, amount *uint256.Int) error {
	bal, err := l.BalanceOf(db, token, owner)
	if err != nil {
		return err
	}
	if bal, err = safemath.Sub(bal, amount); err != nil {
		return errors.Wrapf(err, "burn %s", amount.Dec())
	}
	return l.setBalance(db, token, owner, bal)
}

// move transfers funds between two accounts. It returns false if the
// sender does not hold enough. The transfer fee, if any, is burned.
func (l *Ledger) move(ctx treasury.Context, db treasury.KVStore, info *TokenInfo, token, from, to treasury.Address, amount *uint256.Int) (bool, error) {
	if err := to.Validate(); err != nil {
		return false, errors.Wrap(err, "recipient")
	}
	if amount == nil {
		amount = safemath.Zero()
	}

	src, err := l.BalanceOf(db, token, from)
	if err != nil {
		return false, err
	}
	if src.Lt(amount) {
		return false, nil
	}

	fee := safemath.Zero()
	if info.FeeBasisPoints != 0 {
		scaled, err := safemath.Mul(amount, safemath.NewAmount(uint64(info.FeeBasisPoints)))
		if err != nil {
			return false, errors.Wrap(err, "fee")
		}
		if fee, err = safemath.Div(scaled, feeDenominator); err != nil {
			return false, errors.Wrap(err, "fee")
		}
	}
	received, err := safemath.Sub(amount, fee)
	if err != nil {
		return false, errors.Wrap(err, "fee")
	}

	if src, err = safemath.Sub(src, amount); err != nil {
		return false, err
	}
	if err := l.setBalance(db, token, from, src); err != nil {
		return false, err
	}
	dst, err := l.BalanceOf(db, token, to)
	if err != nil {
		return false, err
	}
	if dst, err = safemath.Add(dst, received); err != nil {
		return false, errors.Wrap(err, "recipient balance")
	}
	if err := l.setBalance(db, token, to, dst); err != nil {
		return false, err
	}

	treasury.GetLogger(ctx).Debug("token transfer",
		"token", info.Ticker, "from", from, "to", to, "amount", amount.Dec(), "fee", fee.Dec())
	return true, nil
}

// checked is the Token view of a ledger entry.
type checked struct {
	ledger *Ledger
	token  treasury.Address
}

func (c *checked) info(db treasury.ReadOnlyKVStore) (*TokenInfo, error) {
	info, err := c.ledger.registry.Info(db, c.token)
	if err != nil {
		return nil, err
	}
	if info.Legacy {
		return nil, errors.Wrapf(errors.ErrType, "token %s does not report transfer results", info.Ticker)
	}
	return info, nil
}

func (c *checked) Transfer(ctx treasury.Context, db treasury.KVStore, from, to treasury.Address, amount *uint256.Int) (bool, error) {
	info, err := c.info(db)
	if err != nil {
		return false, err
	}
	return c.ledger.move(ctx, db, info, c.token, from, to, amount)
}

func (c *checked) TransferFrom(ctx treasury.Context, db treasury.KVStore, spender, from, to treasury.Address, amount *uint256.Int) (bool, error) {
	info, err := c.info(db)
	if err != nil {
		return false, err
	}
	if amount == nil {
		amount = safemath.Zero()
	}
	allowed, err := c.ledger.Allowance(db, c.token, from, spender)
	if err != nil {
		return false, err
	}
	if allowed.Lt(amount) {
		return false, nil
	}
	ok, err := c.ledger.move(ctx, db, info, c.token, from, to, amount)
	if err != nil || !ok {
		return ok, err
	}
	// Maximum allowance is never decreased.
	if allowed.Eq(safemath.Max) {
		return true, nil
	}
	if allowed, err = safemath.Sub(allowed, amount); err != nil {
		return false, err
	}
	if err := c.ledger.setAllowance(db, c.token, from, spender, allowed); err != nil {
		return false, err
	}
	return true, nil
}

func (c *checked) Approve(ctx treasury.Context, db treasury.KVStore, owner, spender treasury.Address, amount *uint256.Int) (bool, error) {
	if _, err := c.info(db); err != nil {
		return false, err
	}
	if err := spender.Validate(); err != nil {
		return false, errors.Wrap(err, "spender")
	}
	if amount == nil {
		amount = safemath.Zero()
	}
	if err := c.ledger.setAllowance(db, c.token, owner, spender, amount); err != nil {
		return false, err
	}
	return true, nil
}

func (c *checked) BalanceOf(db treasury.ReadOnlyKVStore, owner treasury.Address) (*uint256.Int, error) {
	if _, err := c.info(db); err != nil {
		return nil, err
	}
	return c.ledger.BalanceOf(db, c.token, owner)
}

// legacy is the LegacyToken view of a ledger entry.
type legacy struct {
	ledger *Ledger
	token  treasury.Address
}

// Transfer moves the funds. A transfer declined because of insufficient
// funds is silently ignored.
func (l *legacy) Transfer(ctx treasury.Context, db treasury.KVStore, from, to treasury.Address, amount *uint256.Int) error {
	info, err := l.ledger.registry.Info(db, l.token)
	if err != nil {
		return err
	}
	_, err = l.ledger.move(ctx, db, info, l.token, from, to, amount)
	return err
}

func pairKey(a, b treasury.Address) []byte {
	return append(append([]byte(nil), a...), b...)
}

func tripleKey(a, b, c treasury.Address) []byte {
	return append(pairKey(a, b), c...)
}

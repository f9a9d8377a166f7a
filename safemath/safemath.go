package safemath

import (
	"math"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// Max is the largest representable amount, 2^256-1.
var Max = new(uint256.Int).SetAllOne()

// Zero returns a new zero amount.
func Zero() *uint256.Int {
	return new(uint256.Int)
}

// Add returns a+b. It fails with ErrOverflow if the sum exceeds Max.
func Add(a, b *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, errors.Wrapf(errors.ErrOverflow, "%s + %s", a.Dec(), b.Dec())
	}
	return z, nil
}

// Sub returns a-b. It fails with ErrUnderflow if b is greater than a.
func Sub(a, b *uint256.Int) (*uint256.Int, error) {
	if b.Gt(a) {
		return nil, errors.Wrapf(errors.ErrUnderflow, "%s - %s", a.Dec(), b.Dec())
	}
	return new(uint256.Int).Sub(a, b), nil
}

// Mul returns a*b. It fails with ErrOverflow if the product exceeds Max.
func Mul(a, b *uint256.Int) (*uint256.Int, error) {
	if a.IsZero() || b.IsZero() {
		return Zero(), nil
	}
	z, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, errors.Wrapf(errors.ErrOverflow, "%s * %s", a.Dec(), b.Dec())
	}
	return z, nil
}

// Div returns a/b truncated toward zero. It fails with ErrDivideByZero if b
// is zero.
func Div(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, errors.Wrapf(errors.ErrDivideByZero, "%s / 0", a.Dec())
	}
	return new(uint256.Int).Div(a, b), nil
}

// Mod returns a%b. It fails with ErrDivideByZero if b is zero.
func Mod(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, errors.Wrapf(errors.ErrDivideByZero, "%s %% 0", a.Dec())
	}
	return new(uint256.Int).Mod(a, b), nil
}

// Add64 returns a+b. It fails with ErrOverflow if the sum does not fit
// into 64 bits.
func Add64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

// Sub64 returns a-b. It fails with ErrUnderflow if b is greater than a.
func Sub64(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, errors.Wrapf(errors.ErrUnderflow, "%d - %d", a, b)
	}
	return diff, nil
}

// Mul64 returns a*b. It fails with ErrOverflow if the product does not fit
// into 64 bits.
func Mul64(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return lo, nil
}

// AddTime returns t+d. Both values must not be negative. It fails with
// ErrOverflow if the result is not a representable time.
func AddTime(t treasury.UnixTime, d treasury.UnixDuration) (treasury.UnixTime, error) {
	if t < 0 || d < 0 {
		return 0, errors.Wrapf(errors.ErrInput, "negative operand %d + %d", t, d)
	}
	sum, err := Add64(uint64(t), uint64(d))
	if err != nil {
		return 0, err
	}
	if sum > math.MaxInt64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "time %d + %d", t, d)
	}
	return treasury.UnixTime(sum), nil
}

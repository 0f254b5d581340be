// Package rational provides an exact fraction of two int64 values.
//
// A Rational is not kept in lowest terms on construction. Reduce yields the
// canonical form, where two sentinels stand in for results that have no
// finite value: 0/0 is undefined and MaxInt64/1 is (unsigned) infinity.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrOverflow is returned by arithmetic whose reduced result does not fit int64.
var ErrOverflow = errors.New("rational overflow")

// Rational is a numerator/denominator pair.
type Rational struct {
	Num int64
	Den int64
}

// Sentinels, in canonical (reduced) form.
var (
	Undefined = Rational{Num: 0, Den: 0}
	Infinity  = Rational{Num: math.MaxInt64, Den: 1}
	Zero      = Rational{Num: 0, Den: 1}
)

// New stores the pair as given.
func New(num, den int64) Rational {
	return Rational{Num: num, Den: den}
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// ScaleToDenominator multiplies both terms by n. The value is unchanged for n != 0.
func (r Rational) ScaleToDenominator(n int64) Rational {
	return Rational{Num: r.Num * n, Den: r.Den * n}
}

// Reduce returns the canonical form of r.
//
//	0/0 -> 0/0 (undefined)
//	0/d -> 0/1
//	n/0 -> MaxInt64/1 (infinity, the sign of n is dropped)
//	n/d -> lowest terms, sign carried by the numerator
func (r Rational) Reduce() Rational {
	switch {
	case r.Num == 0 && r.Den == 0:
		return Undefined
	case r.Num == 0:
		return Zero
	case r.Den == 0:
		return Infinity
	}

	// Work in big.Int so MinInt64 terms can be negated.
	num, den := big.NewInt(r.Num), big.NewInt(r.Den)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	if !num.IsInt64() || !den.IsInt64() {
		// Only reachable for MinInt64/-1 style inputs. Saturate.
		return Infinity
	}
	return Rational{Num: num.Int64(), Den: den.Int64()}
}

// IsUndefined reports whether r is the 0/0 sentinel.
func (r Rational) IsUndefined() bool {
	return r.Num == 0 && r.Den == 0
}

// IsInfinite reports whether r is infinite, either reduced (MaxInt64/1) or raw (n/0).
func (r Rational) IsInfinite() bool {
	return r == Infinity || (r.Den == 0 && r.Num != 0)
}

// IsInteger reports whether the reduced r is a finite whole number.
func (r Rational) IsInteger() bool {
	red := r.Reduce()
	return red.Den == 1 && red != Infinity
}

// Equal compares by value. Denominators that are literally equal compare
// numerators directly. A zero denominator on either side only equals the
// identical pair, which keeps 0/0 apart from 0/1.
func (r Rational) Equal(o Rational) bool {
	if r.Den == o.Den {
		return r.Num == o.Num
	}
	if r.Den == 0 || o.Den == 0 {
		return false
	}
	a := r.scaledBig(o.Den)
	b := o.scaledBig(r.Den)
	return a.Cmp(b) == 0
}

// scaledBig returns r.Num*n as a big.Int.
func (r Rational) scaledBig(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(r.Num), big.NewInt(n))
}

// Compare returns -1, 0 or +1 by true fraction comparison: a/b against c/d
// is a*d against c*b, with the sign flipped once per negative denominator.
// Zero denominators are ordered through their reduced sentinels: infinity
// is above every finite value and undefined compares equal only to itself
// and below everything else.
func (r Rational) Compare(o Rational) int {
	if r.Den == 0 || o.Den == 0 {
		return compareSentinels(r.Reduce(), o.Reduce())
	}
	if r.Den == o.Den {
		c := cmpInt64(r.Num, o.Num)
		if r.Den < 0 {
			c = -c
		}
		return c
	}
	c := r.scaledBig(o.Den).Cmp(o.scaledBig(r.Den))
	if (r.Den < 0) != (o.Den < 0) {
		c = -c
	}
	return c
}

func compareSentinels(a, b Rational) int {
	switch {
	case a.IsUndefined() && b.IsUndefined():
		return 0
	case a.IsUndefined():
		return -1
	case b.IsUndefined():
		return 1
	case a == Infinity && b == Infinity:
		return 0
	case a == Infinity:
		return 1
	case b == Infinity:
		return -1
	}
	return a.Compare(b)
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool { return r.Compare(o) < 0 }

// Greater reports whether r > o.
func (r Rational) Greater(o Rational) bool { return r.Compare(o) > 0 }

// operands brings both sides to reduced form, with infinity written as 1/0
// so the arithmetic formulas carry it through to the zero-denominator case.
func operands(a, b Rational) (x, y *big.Int, z, w *big.Int) {
	a, b = a.Reduce(), b.Reduce()
	if a == Infinity {
		a = Rational{Num: 1, Den: 0}
	}
	if b == Infinity {
		b = Rational{Num: 1, Den: 0}
	}
	return big.NewInt(a.Num), big.NewInt(a.Den), big.NewInt(b.Num), big.NewInt(b.Den)
}

func fromBig(num, den *big.Int) (Rational, error) {
	switch {
	case num.Sign() == 0 && den.Sign() == 0:
		return Undefined, nil
	case num.Sign() == 0:
		return Zero, nil
	case den.Sign() == 0:
		return Infinity, nil
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	if !num.IsInt64() || !den.IsInt64() {
		return Rational{}, fmt.Errorf("%s/%s: %w", num, den, ErrOverflow)
	}
	res := Rational{Num: num.Int64(), Den: den.Int64()}
	if res == Infinity {
		// A finite MaxInt64 would read back as the infinity sentinel.
		return Rational{}, fmt.Errorf("%s/%s: %w", num, den, ErrOverflow)
	}
	return res, nil
}

// Add returns (a*d + c*b)/(b*d), reduced.
func (r Rational) Add(o Rational) (Rational, error) {
	a, b, c, d := operands(r, o)
	if b.Sign() == 0 && d.Sign() == 0 {
		// inf + inf. Both sentinels are unsigned, so the sum stays infinite.
		if a.Sign() != 0 && c.Sign() != 0 {
			return Infinity, nil
		}
		return Undefined, nil
	}
	num := new(big.Int).Add(new(big.Int).Mul(a, d), new(big.Int).Mul(c, b))
	return fromBig(num, new(big.Int).Mul(b, d))
}

// Sub returns (a*d - c*b)/(b*d), reduced.
func (r Rational) Sub(o Rational) (Rational, error) {
	a, b, c, d := operands(r, o)
	num := new(big.Int).Sub(new(big.Int).Mul(a, d), new(big.Int).Mul(c, b))
	return fromBig(num, new(big.Int).Mul(b, d))
}

// Mul returns (a*c)/(b*d), reduced.
func (r Rational) Mul(o Rational) (Rational, error) {
	a, b, c, d := operands(r, o)
	return fromBig(new(big.Int).Mul(a, c), new(big.Int).Mul(b, d))
}

// Quo returns (a*d)/(b*c), reduced. Division by zero yields a sentinel.
func (r Rational) Quo(o Rational) (Rational, error) {
	a, b, c, d := operands(r, o)
	return fromBig(new(big.Int).Mul(a, d), new(big.Int).Mul(b, c))
}

// Neg returns -r, reduced. Infinity has no sign and stays infinite.
func (r Rational) Neg() Rational {
	red := r.Reduce()
	if red.IsUndefined() || red == Infinity {
		return red
	}
	return Rational{Num: -red.Num, Den: red.Den}
}

// Float64 returns the nearest float64. Infinity maps to +Inf and undefined to NaN.
func (r Rational) Float64() float64 {
	red := r.Reduce()
	switch {
	case red.IsUndefined():
		return math.NaN()
	case red == Infinity:
		return math.Inf(1)
	}
	f, _ := new(big.Rat).SetFrac64(red.Num, red.Den).Float64()
	return f
}

// String prints the reduced fraction, or "undefined" / "infinity" for the sentinels.
func (r Rational) String() string {
	red := r.Reduce()
	switch {
	case red.IsUndefined():
		return "undefined"
	case red == Infinity:
		return "infinity"
	}
	return fmt.Sprintf("%d/%d", red.Num, red.Den)
}

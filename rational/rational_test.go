package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleToDenominator(t *testing.T) {
	expected := New(10, 30)
	result := New(2, 6).ScaleToDenominator(5)
	assert.Equal(t, expected, result)

	for _, r := range []Rational{New(2, 6), New(-7, 3), New(5, -9), New(0, 4)} {
		for _, n := range []int64{1, -1, 2, 7, -13, 1000} {
			assert.Truef(t, r.ScaleToDenominator(n).Equal(r), "%v scaled by %d", r, n)
			assert.Zerof(t, r.ScaleToDenominator(n).Compare(r), "%v scaled by %d", r, n)
		}
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		in   Rational
		want Rational
	}{
		{name: "one", in: New(10, 30), want: New(1, 3)},
		{name: "two", in: New(15, 9), want: New(5, 3)},
		{name: "already reduced", in: New(5, 3), want: New(5, 3)},
		{name: "negative denominator", in: New(4, -6), want: New(-2, 3)},
		{name: "both negative", in: New(-4, -6), want: New(2, 3)},
		{name: "zero numerator", in: New(0, -17), want: New(0, 1)},
		{name: "zero over zero", in: New(0, 0), want: Undefined},
		{name: "positive over zero", in: New(3, 0), want: Infinity},
		{name: "negative over zero", in: New(-3, 0), want: Infinity},
		{name: "whole", in: New(12, 4), want: New(3, 1)},
		{name: "min int", in: New(math.MinInt64, 2), want: New(math.MinInt64/2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Reduce())
		})
	}
}

func TestSentinels(t *testing.T) {
	undef := New(0, 0).Reduce()
	require.True(t, undef.IsUndefined())
	assert.False(t, undef.Equal(New(0, 1)), "0/0 must differ from 0/1")
	assert.False(t, undef.Equal(New(1, math.MaxInt64)), "0/0 must differ from 1/MAX")
	assert.True(t, undef.Equal(New(0, 0)))

	// The sign of the numerator is dropped.
	for _, n := range []int64{1, -1, 42, -42, math.MaxInt64, math.MinInt64} {
		red := New(n, 0).Reduce()
		assert.Equalf(t, New(math.MaxInt64, 1), red, "%d/0", n)
		assert.True(t, red.IsInfinite())
	}
	assert.Equal(t, "undefined", New(0, 0).String())
	assert.Equal(t, "infinity", New(-5, 0).String())
}

func TestEquality(t *testing.T) {
	for _, r := range []Rational{New(1, 2), New(-3, 7), New(9, 1), New(5, -2)} {
		assert.True(t, r.Equal(r))
	}
	assert.True(t, New(1, 2).Equal(New(2, 4)))
	assert.True(t, New(1, -2).Equal(New(-2, 4)))
	assert.False(t, New(1, 2).Equal(New(1, 3)))
	// Same denominator fast path.
	assert.True(t, New(3, 8).Equal(New(3, 8)))
	assert.False(t, New(3, 8).Equal(New(5, 8)))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Rational
		want int
	}{
		{name: "whole above fraction", a: New(3, 1), b: New(2, 3), want: 1},
		{name: "fraction below whole", a: New(2, 3), b: New(3, 1), want: -1},
		// Different denominators must cross-multiply: raw numerators 2 vs 2 would say equal.
		{name: "same numerator", a: New(2, 5), b: New(2, 3), want: -1},
		{name: "five halves above three halves", a: New(5, 2), b: New(3, 2), want: 1},
		{name: "raw numerators disagree", a: New(1, 2), b: New(3, 10), want: 1},
		{name: "equal values", a: New(1, 2), b: New(3, 6), want: 0},
		{name: "negative denominator", a: New(1, -2), b: New(1, 3), want: -1},
		{name: "both negative denominators", a: New(1, -2), b: New(1, -3), want: -1},
		{name: "shared negative denominator", a: New(1, -5), b: New(2, -5), want: 1},
		{name: "infinity above max", a: New(1, 0), b: New(math.MaxInt64-1, 1), want: 1},
		{name: "undefined below everything", a: New(0, 0), b: New(math.MinInt64, 1), want: -1},
		{name: "undefined equals itself", a: New(0, 0), b: New(0, 0), want: 0},
		{name: "no overflow", a: New(math.MaxInt64, 3), b: New(math.MaxInt64-1, 3), want: 1},
		{name: "no overflow cross", a: New(math.MaxInt64, math.MaxInt64-1), b: New(1, 1), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
	assert.True(t, New(3, 1).Greater(New(2, 3)))
	assert.True(t, New(2, 3).Less(New(3, 1)))
}

func TestArithmetic(t *testing.T) {
	type op func(Rational, Rational) (Rational, error)
	add := Rational.Add
	sub := Rational.Sub
	mul := Rational.Mul
	quo := Rational.Quo

	tests := []struct {
		name string
		fn   op
		a, b Rational
		want Rational
	}{
		{name: "add", fn: add, a: New(1, 2), b: New(1, 3), want: New(5, 6)},
		{name: "add reduces", fn: add, a: New(1, 6), b: New(1, 3), want: New(1, 2)},
		{name: "add unreduced operands", fn: add, a: New(2, 4), b: New(3, 6), want: New(1, 1)},
		{name: "sub", fn: sub, a: New(1, 2), b: New(1, 3), want: New(1, 6)},
		{name: "sub negative", fn: sub, a: New(1, 3), b: New(1, 2), want: New(-1, 6)},
		{name: "mul", fn: mul, a: New(2, 3), b: New(9, 4), want: New(3, 2)},
		{name: "quo", fn: quo, a: New(2, 3), b: New(4, 9), want: New(3, 2)},
		{name: "quo negative divisor", fn: quo, a: New(1, 2), b: New(-1, 4), want: New(-2, 1)},
		{name: "quo by zero", fn: quo, a: New(1, 2), b: Zero, want: Infinity},
		{name: "zero quo zero", fn: quo, a: Zero, b: Zero, want: Undefined},
		{name: "infinity plus finite", fn: add, a: Infinity, b: New(1, 2), want: Infinity},
		{name: "infinity plus infinity", fn: add, a: Infinity, b: Infinity, want: Infinity},
		{name: "infinity minus infinity", fn: sub, a: Infinity, b: Infinity, want: Undefined},
		{name: "infinity times zero", fn: mul, a: Infinity, b: Zero, want: Undefined},
		{name: "infinity times finite", fn: mul, a: Infinity, b: New(-3, 4), want: Infinity},
		{name: "finite over infinity", fn: quo, a: New(7, 2), b: Infinity, want: Zero},
		{name: "infinity over infinity", fn: quo, a: Infinity, b: Infinity, want: Undefined},
		{name: "undefined absorbs", fn: add, a: Undefined, b: New(1, 2), want: Undefined},
		{name: "undefined absorbs mul", fn: mul, a: New(1, 2), b: Undefined, want: Undefined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticOverflow(t *testing.T) {
	got, err := New(math.MaxInt64-2, 1).Add(FromInt(1))
	require.NoError(t, err)
	assert.Equal(t, FromInt(math.MaxInt64-1), got)

	// A finite MaxInt64 would collide with the infinity sentinel.
	_, err = New(math.MaxInt64-1, 1).Add(FromInt(1))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(math.MaxInt64-1, 1).Mul(FromInt(2))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = New(1, math.MaxInt64).Mul(New(1, 2))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestNeg(t *testing.T) {
	assert.Equal(t, New(-1, 2), New(2, 4).Neg())
	assert.Equal(t, New(1, 2), New(1, -2).Neg())
	assert.Equal(t, Infinity, Infinity.Neg())
	assert.Equal(t, Undefined, Undefined.Neg())
}

func TestFloat64(t *testing.T) {
	assert.InDelta(t, 0.25, New(1, 4).Float64(), 1e-15)
	assert.InDelta(t, -1.0/3, New(1, -3).Float64(), 1e-15)
	assert.True(t, math.IsInf(New(-2, 0).Float64(), 1))
	assert.True(t, math.IsNaN(Undefined.Float64()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1/3", New(10, 30).String())
	assert.Equal(t, "-5/3", New(15, -9).String())
	assert.Equal(t, "0/1", New(0, 9).String())
}

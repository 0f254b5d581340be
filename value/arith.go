package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"

	"go.creack.net/calc/rational"
)

// Errors returned by the arithmetic. Callers match them with errors.Is.
var (
	ErrAbsentOperand = errors.New("absent value used as an operand")
	ErrTypeMismatch  = errors.New("operand type mismatch")
)

// Op is an arithmetic operator.
type Op byte

// Supported operators.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpQuo Op = '/'
	OpPow Op = '^'
)

func (op Op) String() string { return string(op) }

// DefaultPrec is the precision, in bits, of Float powers.
const DefaultPrec = 64

// Binary applies op to l and r following the promotion lattice:
//
//	Integer  op Integer  -> Integer (Rational for inexact division)
//	Integer  op Rational -> Rational
//	Rational op Rational -> Rational
//	Float    op any      -> Float
//
// Whole Rational results come back as Integer. Results that overflow int64
// are widened to Float. prec is the bigfloat precision used by OpPow on
// Float operands; zero means DefaultPrec.
func Binary(op Op, l, r Value, prec uint) (Value, error) {
	if IsAbsent(l) || IsAbsent(r) {
		return nil, fmt.Errorf("%s: %w", op, ErrAbsentOperand)
	}
	if prec == 0 {
		prec = DefaultPrec
	}

	switch {
	case l.Kind() == KindFloat || r.Kind() == KindFloat:
		return floatBinary(op, toFloat(l), toFloat(r), prec)
	case l.Kind() == KindInteger && r.Kind() == KindInteger:
		return intBinary(op, int64(l.(Integer)), int64(r.(Integer)), prec)
	case l.Kind() == KindRational || r.Kind() == KindRational:
		return ratBinary(op, toRational(l), toRational(r), prec)
	}
	return nil, fmt.Errorf("%s %s %s: %w", l.Kind(), op, r.Kind(), ErrTypeMismatch)
}

// Neg returns -v.
func Neg(v Value) (Value, error) {
	switch v := v.(type) {
	case Integer:
		if v == math.MinInt64 {
			return -Float(v), nil
		}
		return -v, nil
	case Float:
		return -v, nil
	case Rational:
		return normalize(v.Neg()), nil
	case Absence, nil:
		return nil, fmt.Errorf("-: %w", ErrAbsentOperand)
	default:
		return nil, fmt.Errorf("- %T: %w", v, ErrTypeMismatch)
	}
}

// Pos returns v unchanged, rejecting Absence.
func Pos(v Value) (Value, error) {
	if IsAbsent(v) {
		return nil, fmt.Errorf("+: %w", ErrAbsentOperand)
	}
	return v, nil
}

func floatBinary(op Op, a, b float64, prec uint) (Value, error) {
	switch op {
	case OpAdd:
		return Float(a + b), nil
	case OpSub:
		return Float(a - b), nil
	case OpMul:
		return Float(a * b), nil
	case OpQuo:
		return Float(a / b), nil
	case OpPow:
		return Float(floatPow(a, b, prec)), nil
	}
	return nil, fmt.Errorf("float %s float: %w", op, ErrTypeMismatch)
}

// floatPow computes a**b with bigfloat at prec bits for finite positive
// bases, then rounds to float64. Other bases are outside bigfloat's domain
// and go through math.Pow, as do results that overflow or underflow float64.
func floatPow(a, b float64, prec uint) float64 {
	if a <= 0 || math.IsInf(a, 0) || math.IsNaN(a) || math.IsInf(b, 0) || math.IsNaN(b) {
		return math.Pow(a, b)
	}
	if f := math.Pow(a, b); f == 0 || math.IsInf(f, 0) {
		return f
	}
	x := new(big.Float).SetPrec(prec).SetFloat64(a)
	y := new(big.Float).SetPrec(prec).SetFloat64(b)
	z := bigfloat.Pow(new(big.Float).SetPrec(prec), x, y)
	f, _ := z.Float64()
	return f
}

// fitInt returns z as an Integer, or as a Float when it does not fit.
func fitInt(z *big.Int) Value {
	if z.IsInt64() {
		return Integer(z.Int64())
	}
	f, _ := new(big.Float).SetInt(z).Float64()
	return Float(f)
}

func intBinary(op Op, a, b int64, prec uint) (Value, error) {
	x, y := big.NewInt(a), big.NewInt(b)
	switch op {
	case OpAdd:
		return fitInt(x.Add(x, y)), nil
	case OpSub:
		return fitInt(x.Sub(x, y)), nil
	case OpMul:
		return fitInt(x.Mul(x, y)), nil
	case OpQuo:
		if b == 0 {
			return Rational{rational.New(a, 0).Reduce()}, nil
		}
		if a%b == 0 {
			return fitInt(x.Quo(x, y)), nil
		}
		return ratBinary(op, rational.FromInt(a), rational.FromInt(b), prec)
	case OpPow:
		return ratBinary(op, rational.FromInt(a), rational.FromInt(b), prec)
	}
	return nil, fmt.Errorf("integer %s integer: %w", op, ErrTypeMismatch)
}

func ratBinary(op Op, a, b rational.Rational, prec uint) (Value, error) {
	var (
		res rational.Rational
		err error
	)
	switch op {
	case OpAdd:
		res, err = a.Add(b)
	case OpSub:
		res, err = a.Sub(b)
	case OpMul:
		res, err = a.Mul(b)
	case OpQuo:
		res, err = a.Quo(b)
	case OpPow:
		return ratPow(a, b, prec), nil
	default:
		return nil, fmt.Errorf("rational %s rational: %w", op, ErrTypeMismatch)
	}
	if errors.Is(err, rational.ErrOverflow) {
		return floatBinary(op, a.Float64(), b.Float64(), prec)
	}
	if err != nil {
		return nil, err
	}
	return normalize(res), nil
}

// maxPowBits bounds the size of exact powers before falling back to Float.
const maxPowBits = 64

// ratPow raises a to b. Whole exponents stay exact while the result fits
// int64; everything else is computed in floating point.
func ratPow(a, b rational.Rational, prec uint) Value {
	a, b = a.Reduce(), b.Reduce()
	if a.IsUndefined() || b.IsUndefined() {
		return Rational{rational.Undefined}
	}
	if !b.IsInteger() {
		return Float(floatPow(a.Float64(), b.Float64(), prec))
	}
	k := b.Num
	switch {
	case k == 0:
		return Integer(1)
	case a == rational.Infinity && k > 0:
		return Rational{rational.Infinity}
	case a == rational.Infinity:
		return Integer(0)
	case a.Num == 0 && k < 0:
		return Rational{rational.Infinity}
	}

	if k == math.MinInt64 {
		// -k does not fit int64.
		return Float(floatPow(a.Float64(), b.Float64(), prec))
	}

	num, den := big.NewInt(a.Num), big.NewInt(a.Den)
	if k < 0 {
		num, den = den, num
		k = -k
	}
	if !powFits(num, k) || !powFits(den, k) {
		return Float(floatPow(a.Float64(), b.Float64(), prec))
	}
	e := big.NewInt(k)
	num.Exp(num, e, nil)
	den.Exp(den, e, nil)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if !num.IsInt64() || !den.IsInt64() {
		return Float(floatPow(a.Float64(), b.Float64(), prec))
	}
	return normalize(rational.New(num.Int64(), den.Int64()))
}

// powFits reports whether |x|**k might fit in maxPowBits, without computing it.
func powFits(x *big.Int, k int64) bool {
	bits := int64(new(big.Int).Abs(x).BitLen())
	if bits <= 1 {
		return true
	}
	return (bits-1)*k < maxPowBits
}

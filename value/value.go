// Package value defines the numeric domain expressions evaluate to.
//
// A Value is exactly one of Integer, Float, Rational or Absence. The set is
// closed: the marker method is unexported, so type switches over the four
// cases are exhaustive.
package value

import (
	"fmt"
	"math"
	"strconv"

	"go.creack.net/calc/rational"
)

// Kind identifies the case of a Value.
type Kind int

// Kinds, in promotion order.
const (
	KindAbsence Kind = iota
	KindInteger
	KindRational
	KindFloat
)

var kindStrings = map[Kind]string{
	KindAbsence:  "absence",
	KindInteger:  "integer",
	KindRational: "rational",
	KindFloat:    "float",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a member of the numeric domain.
type Value interface {
	Kind() Kind
	String() string
	value()
}

// Integer is a signed 64-bit integer.
type Integer int64

func (Integer) value()     {}
func (Integer) Kind() Kind { return KindInteger }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is an IEEE double.
type Float float64

func (Float) value()     {}
func (Float) Kind() Kind { return KindFloat }

// String uses the shortest fixed notation for moderate magnitudes and the
// shortest exponent notation otherwise.
func (f Float) String() string {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if abs := math.Abs(x); abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Rational is an exact fraction, always held in reduced form.
type Rational struct {
	rational.Rational
}

func (Rational) value()     {}
func (Rational) Kind() Kind { return KindRational }

// Frac returns num/den reduced.
func Frac(num, den int64) Rational {
	return Rational{rational.New(num, den).Reduce()}
}

// Absence is the result of a statement that produces nothing, such as an
// assignment. It is never printed.
type Absence struct{}

func (Absence) value()         {}
func (Absence) Kind() Kind     { return KindAbsence }
func (Absence) String() string { return "" }

// IsAbsent reports whether v is nil or Absence.
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Absence)
	return ok
}

// Equal reports whether a and b are the same case holding equal values.
// Floats compare with ==, so NaN is never equal to itself.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		return ok && a == b
	case Float:
		b, ok := b.(Float)
		return ok && a == b
	case Rational:
		b, ok := b.(Rational)
		return ok && a.Rational.Equal(b.Rational)
	case Absence:
		_, ok := b.(Absence)
		return ok
	case nil:
		return b == nil
	default:
		panic(fmt.Errorf("unexpected value type %T", a))
	}
}

// normalize turns a whole finite Rational into an Integer.
func normalize(r rational.Rational) Value {
	r = r.Reduce()
	if r.Den == 1 && r != rational.Infinity {
		return Integer(r.Num)
	}
	return Rational{r}
}

// toFloat widens an Integer or Rational.
func toFloat(v Value) float64 {
	switch v := v.(type) {
	case Integer:
		return float64(v)
	case Float:
		return float64(v)
	case Rational:
		return v.Float64()
	default:
		panic(fmt.Errorf("cannot widen %T to float", v))
	}
}

// toRational widens an Integer.
func toRational(v Value) rational.Rational {
	switch v := v.(type) {
	case Integer:
		return rational.FromInt(int64(v))
	case Rational:
		return v.Rational
	default:
		panic(fmt.Errorf("cannot widen %T to rational", v))
	}
}

package basiccalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is the result of evaluating an expression. It is either an integer
// of unlimited size or a float64. The zero value is the integer 0.
type Number struct {
	i     *big.Int
	f     float64
	float bool
}

// Int returns an integer Number with a copy of x.
func Int(x *big.Int) Number {
	return Number{i: new(big.Int).Set(x)}
}

// Int64 returns an integer Number.
func Int64(x int64) Number {
	return Number{i: big.NewInt(x)}
}

// Float returns a floating-point Number.
func Float(x float64) Number {
	return Number{f: x, float: true}
}

// IsInt returns whether x is an integer rather than a float.
func (x Number) IsInt() bool {
	return !x.float
}

// BigInt returns a copy of an integer's value, or nil if x is a float.
func (x Number) BigInt() *big.Int {
	if x.float {
		return nil
	}
	return new(big.Int).Set(x.int())
}

// Float64 returns the value of x as a float64. Integers are rounded to the
// nearest float64, which is ±Inf if they are too large.
func (x Number) Float64() float64 {
	if x.float {
		return x.f
	}
	f, _ := new(big.Float).SetInt(x.int()).Float64()
	return f
}

// Equal reports whether x and y are the same kind of number with the same
// value. NaN is equal to nothing.
func (x Number) Equal(y Number) bool {
	if x.float != y.float {
		return false
	}
	if x.float {
		return x.f == y.f
	}
	return x.int().Cmp(y.int()) == 0
}

// int returns the integer value of x without copying. The result must not be
// modified.
func (x Number) int() *big.Int {
	if x.i == nil {
		return new(big.Int)
	}
	return x.i
}

func (x Number) isZero() bool {
	if x.float {
		return x.f == 0
	}
	return x.int().Sign() == 0
}

// toFloat converts x for float arithmetic. The error is an *OverflowError
// with a nil Node if x is an integer too large for a float64.
func (x Number) toFloat() (float64, error) {
	if x.float {
		return x.f, nil
	}
	f := x.Float64()
	if math.IsInf(f, 0) {
		return 0, &OverflowError{}
	}
	return f, nil
}

// String formats integers in decimal and floats in their shortest round-trip
// form, always with a decimal point or exponent, e.g. "5", "5.0", "1.5",
// "1e+16", "1e-05", "inf".
func (x Number) String() string {
	if !x.float {
		return x.int().String()
	}
	return formatFloat(x.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

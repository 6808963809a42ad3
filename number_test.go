package basiccalc_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/basiccalc"
)

func TestNumberString(t *testing.T) {
	cases := []struct {
		x    basiccalc.Number
		want string
	}{
		{basiccalc.Number{}, "0"},
		{basiccalc.Int64(5), "5"},
		{basiccalc.Int64(-12), "-12"},
		{basiccalc.Int(new(big.Int).Lsh(big.NewInt(1), 100)), "1267650600228229401496703205376"},
		{basiccalc.Float(5), "5.0"},
		{basiccalc.Float(1.5), "1.5"},
		{basiccalc.Float(math.Copysign(0, -1)), "-0.0"},
		{basiccalc.Float(0.30000000000000004), "0.30000000000000004"},
		{basiccalc.Float(1e15), "1000000000000000.0"},
		{basiccalc.Float(1e16), "1e+16"},
		{basiccalc.Float(1.5e16), "1.5e+16"},
		{basiccalc.Float(0.0001), "0.0001"},
		{basiccalc.Float(0.00001), "1e-05"},
		{basiccalc.Float(math.Inf(1)), "inf"},
		{basiccalc.Float(math.Inf(-1)), "-inf"},
		{basiccalc.Float(math.NaN()), "nan"},
	}
	for _, c := range cases {
		if got := c.x.String(); got != c.want {
			t.Errorf("wrong string: want %q, got %q", c.want, got)
		}
	}
}

func TestNumberKinds(t *testing.T) {
	i := basiccalc.Int64(2)
	f := basiccalc.Float(2)
	if !i.IsInt() || f.IsInt() {
		t.Errorf("wrong kinds: %v is int %t, %v is int %t", i, i.IsInt(), f, f.IsInt())
	}
	if i.Equal(f) || f.Equal(i) {
		t.Errorf("%v and %v compare equal across kinds", i, f)
	}
	if f.BigInt() != nil {
		t.Errorf("float has BigInt %v", f.BigInt())
	}
	if i.Float64() != 2 {
		t.Errorf("wrong Float64 for %v: %g", i, i.Float64())
	}
	if basiccalc.Float(math.NaN()).Equal(basiccalc.Float(math.NaN())) {
		t.Error("NaN is equal to itself")
	}
	if !(basiccalc.Number{}).Equal(basiccalc.Int64(0)) {
		t.Error("zero Number is not integer zero")
	}
	// BigInt returns a copy.
	b := i.BigInt()
	b.SetInt64(7)
	if i.String() != "2" {
		t.Errorf("modifying BigInt result changed the number to %v", i)
	}
	huge := basiccalc.Int(new(big.Int).Lsh(big.NewInt(1), 2000))
	if !math.IsInf(huge.Float64(), 1) {
		t.Errorf("huge int converted to %g", huge.Float64())
	}
}

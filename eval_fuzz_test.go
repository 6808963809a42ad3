//go:build go1.18
// +build go1.18

package basiccalc_test

import (
	"testing"

	"github.com/zephyrtronium/basiccalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2*3")
	f.Add("5/0")
	f.Add("1.5*(2-3)")
	f.Fuzz(func(t *testing.T, s string) {
		basiccalc.EvalString(s)
		basiccalc.EvalDecimalString(s, 8)
	})
}

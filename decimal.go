package basiccalc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EvalDecimal computes the value of the tree rooted at n in exact decimal
// arithmetic. Literals are exact, so "0.1+0.2" is exactly 0.3, and sums,
// differences, and products are exact. Quotients are rounded half away from
// zero to places digits after the decimal point.
func (n *Node) EvalDecimal(places int32) (decimal.Decimal, error) {
	if err := n.check(); err != nil {
		return decimal.Zero, err
	}
	if n.op == OpNone {
		// Literals like "1." have no fractional digits.
		d, err := decimal.NewFromString(strings.TrimSuffix(n.lit, "."))
		if err != nil {
			return decimal.Zero, &MalformedTreeError{Node: n, Reason: err.Error()}
		}
		return d, nil
	}
	l, err := n.left.EvalDecimal(places)
	if err != nil {
		return decimal.Zero, err
	}
	r, err := n.right.EvalDecimal(places)
	if err != nil {
		return decimal.Zero, err
	}
	switch n.op {
	case OpAdd:
		return l.Add(r), nil
	case OpSub:
		return l.Sub(r), nil
	case OpMul:
		return l.Mul(r), nil
	case OpDiv:
		if r.IsZero() {
			return decimal.Zero, &DivisionByZeroError{Node: n}
		}
		return l.DivRound(r, places), nil
	default:
		return decimal.Zero, &MalformedTreeError{Node: n, Reason: "unknown operator " + n.op.String()}
	}
}

// EvalDecimalString is a shortcut to parse and evaluate an expression in
// exact decimal arithmetic.
func EvalDecimalString(src string, places int32) (decimal.Decimal, error) {
	n, err := ParseString(src)
	if err != nil {
		return decimal.Zero, err
	}
	return n.EvalDecimal(places)
}

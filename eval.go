package basiccalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Eval evaluates an expression tree. It is the same as n.Eval().
func Eval(n *Node) (Number, error) {
	return n.Eval()
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string) (Number, error) {
	n, err := ParseString(src)
	if err != nil {
		return Number{}, err
	}
	return n.Eval()
}

// Eval computes the value of the tree rooted at n. A literal with a decimal
// point is a float; any other literal is an integer. Arithmetic on two
// integers gives an integer, except that division always gives a float. If
// either operand is a float, so is the result.
func (n *Node) Eval() (Number, error) {
	if err := n.check(); err != nil {
		return Number{}, err
	}
	if n.op == OpNone {
		return literal(n)
	}
	l, err := n.left.Eval()
	if err != nil {
		return Number{}, err
	}
	r, err := n.right.Eval()
	if err != nil {
		return Number{}, err
	}
	if l.float || r.float {
		return n.floatArith(l, r)
	}
	return n.intArith(l, r)
}

func (n *Node) floatArith(l, r Number) (Number, error) {
	x, err := l.toFloat()
	if err != nil {
		return Number{}, &OverflowError{Node: n}
	}
	y, err := r.toFloat()
	if err != nil {
		return Number{}, &OverflowError{Node: n}
	}
	switch n.op {
	case OpAdd:
		return Float(x + y), nil
	case OpSub:
		return Float(x - y), nil
	case OpMul:
		return Float(x * y), nil
	case OpDiv:
		if r.isZero() {
			return Number{}, &DivisionByZeroError{Node: n}
		}
		return Float(x / y), nil
	default:
		return Number{}, &MalformedTreeError{Node: n, Reason: "unknown operator " + n.op.String()}
	}
}

func (n *Node) intArith(l, r Number) (Number, error) {
	x, y := l.int(), r.int()
	switch n.op {
	case OpAdd:
		return Number{i: new(big.Int).Add(x, y)}, nil
	case OpSub:
		return Number{i: new(big.Int).Sub(x, y)}, nil
	case OpMul:
		return Number{i: new(big.Int).Mul(x, y)}, nil
	case OpDiv:
		if r.isZero() {
			return Number{}, &DivisionByZeroError{Node: n}
		}
		// big.Rat rounds to the nearest float64, even when x and y are
		// themselves too large to convert.
		f, _ := new(big.Rat).SetFrac(x, y).Float64()
		if math.IsInf(f, 0) {
			return Number{}, &OverflowError{Node: n}
		}
		return Float(f), nil
	default:
		return Number{}, &MalformedTreeError{Node: n, Reason: "unknown operator " + n.op.String()}
	}
}

// literal evaluates a leaf.
func literal(n *Node) (Number, error) {
	if !strings.Contains(n.lit, ".") {
		x, ok := new(big.Int).SetString(n.lit, 10)
		if !ok {
			return Number{}, &MalformedTreeError{Node: n, Reason: "invalid literal " + strconv.Quote(n.lit)}
		}
		return Number{i: x}, nil
	}
	f, err := strconv.ParseFloat(n.lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, &MalformedTreeError{Node: n, Reason: "invalid literal " + strconv.Quote(n.lit)}
	}
	// Out of range literals are ±Inf.
	return Float(f), nil
}

// check verifies that n itself is either a leaf with a valid literal or an
// operator with two children. It does not check the children.
func (n *Node) check() error {
	switch {
	case n == nil:
		return &MalformedTreeError{Reason: "nil node"}
	case n.op == OpNone:
		if n.left != nil || n.right != nil {
			return &MalformedTreeError{Node: n, Reason: "leaf with children"}
		}
		if !validLiteral(n.lit) {
			return &MalformedTreeError{Node: n, Reason: "invalid literal " + strconv.Quote(n.lit)}
		}
	case n.op.prec() == 0:
		return &MalformedTreeError{Node: n, Reason: "unknown operator " + n.op.String()}
	case n.left == nil || n.right == nil:
		return &MalformedTreeError{Node: n, Reason: "operator " + n.op.String() + " without two operands"}
	}
	return nil
}

// validLiteral reports whether s is a run of digits with at most one decimal
// point, starting with a digit.
func validLiteral(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	dot := false
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return true
}

// DivisionByZeroError is an error from dividing by an operand that evaluates
// to zero.
type DivisionByZeroError struct {
	// Node is the division whose right operand is zero.
	Node *Node
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero in " + err.Node.String()
}

// OverflowError is an error from an integer too large to convert to a float,
// either as an operand mixed with a float or as the quotient of a division.
type OverflowError struct {
	// Node is the operation that needed the conversion.
	Node *Node
}

func (err *OverflowError) Error() string {
	if err.Node == nil {
		return "integer too large to convert to float"
	}
	return "integer too large to convert to float in " + err.Node.Op().String() + " operation"
}

// MalformedTreeError indicates a node that is neither a leaf with a valid
// literal nor an operator with two operands. Trees from Parse never cause it.
type MalformedTreeError struct {
	// Node is the malformed node. It may be nil.
	Node *Node
	// Reason describes what is wrong with the node.
	Reason string
}

func (err *MalformedTreeError) Error() string {
	return "malformed expression tree: " + err.Reason
}

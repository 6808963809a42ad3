package basiccalc

import (
	"strconv"
	"strings"
)

// Node is a node in the binary tree of a parsed expression. A node is either
// a leaf holding a number literal or an operator with exactly two children.
// Nodes are immutable once constructed, and each operator node is the sole
// owner of its children.
type Node struct {
	op  Op
	lit string

	left  *Node
	right *Node
}

// Op is a binary operator, or OpNone for a leaf.
type Op int8

const (
	OpNone Op = iota

	OpAdd // evaluate left, add right
	OpSub // evaluate left, sub right
	OpMul // evaluate left, mul right
	OpDiv // evaluate left, true div by right
)

func (op Op) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// prec is the binding strength of the operator. Higher binds tighter.
func (op Op) prec() int8 {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

// binop gets the operator for a token string. If there is no such operator,
// the result is OpNone.
func binop(text string) Op {
	switch text {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	default:
		return OpNone
	}
}

// Leaf creates a leaf node for a number literal such as "12" or "3.5".
// Panics if lit is empty.
func Leaf(lit string) *Node {
	if lit == "" {
		panic("basiccalc: empty literal")
	}
	return &Node{lit: lit}
}

// Binary creates an operator node with both of its children. Panics if op is
// not a binary operator or either child is nil.
func Binary(op Op, left, right *Node) *Node {
	if op.prec() == 0 {
		panic("basiccalc: invalid operator " + op.String())
	}
	if left == nil || right == nil {
		panic("basiccalc: operator " + op.String() + " needs two operands")
	}
	return &Node{op: op, left: left, right: right}
}

// IsLeaf returns whether n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.op == OpNone
}

// Op returns the node's operator, or OpNone if n is a leaf.
func (n *Node) Op() Op {
	return n.op
}

// Literal returns the text of a leaf's number literal, or the empty string if
// n is an operator.
func (n *Node) Literal() string {
	return n.lit
}

// Left and Right return an operator's children, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

func (n *Node) Right() *Node { return n.right }

// Equal reports whether two trees have the same shape, operators, and
// literals.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.op != m.op || n.lit != m.lit {
		return false
	}
	return n.left.Equal(m.left) && n.right.Equal(m.right)
}

// String renders the tree as fully parenthesized infix, e.g. "(1 + (2 * 3))".
// The result parses back to an equal tree.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch {
	case n == nil:
		b.WriteString("<nil>")
	case n.op == OpNone:
		if n.lit == "" {
			// Invalid nodes use invalid characters.
			b.WriteByte('$')
			return
		}
		b.WriteString(n.lit)
	default:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	}
}

// Sexp renders the tree in prefix form, e.g. "(+ 1 (* 2 3))".
func (n *Node) Sexp() string {
	var b strings.Builder
	n.sexp(&b)
	return b.String()
}

func (n *Node) sexp(b *strings.Builder) {
	switch {
	case n == nil:
		b.WriteString("<nil>")
	case n.op == OpNone:
		if n.lit == "" {
			b.WriteByte('$')
			return
		}
		b.WriteString(n.lit)
	default:
		b.WriteByte('(')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.left.sexp(b)
		b.WriteByte(' ')
		n.right.sexp(b)
		b.WriteByte(')')
	}
}

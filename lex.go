package basiccalc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical element of an expression.
type Token struct {
	// Text is the token's text with any interior whitespace removed.
	Text string
	// Kind is the token's kind.
	Kind TokenKind
	// Pos is the 1-based rune column of the token's first rune.
	Pos int
	// End is the column just past the token's last rune. It differs from
	// Pos plus the length of Text when a literal contains whitespace.
	End int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the kind of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is an integer or decimal literal.
	TokenNum
	// TokenOp is one of the binary operators in Operators.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Tokenize scans an expression into tokens. Whitespace is insignificant
// everywhere, including between the digits of a number, so "1 2" is the single
// literal 12. Token positions refer to src as given. An empty or blank src
// results in no tokens and no error.
func Tokenize(src string) ([]Token, error) {
	var (
		toks []Token
		buf  strings.Builder
	)
	rs := []rune(src)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			pos := i + 1
			i = scanNum(&buf, rs, i)
			toks = append(toks, Token{Text: buf.String(), Kind: TokenNum, Pos: pos, End: i + 2})
			buf.Reset()
		case strings.ContainsRune(Operators, r):
			toks = append(toks, Token{Text: string(r), Kind: TokenOp, Pos: i + 1, End: i + 2})
		case r == '(':
			toks = append(toks, Token{Text: "(", Kind: TokenOpen, Pos: i + 1, End: i + 2})
		case r == ')':
			toks = append(toks, Token{Text: ")", Kind: TokenClose, Pos: i + 1, End: i + 2})
		default:
			return toks, &TokenError{Col: i + 1, Char: r}
		}
	}
	return toks, nil
}

// scanNum writes the number starting at rs[i] to buf and returns the index of
// its last rune. A second decimal point ends the number.
func scanNum(buf *strings.Builder, rs []rune, i int) int {
	var dot bool
	last := i
	for ; i < len(rs); i++ {
		r := rs[i]
		switch {
		case '0' <= r && r <= '9':
		case r == '.' && !dot:
			dot = true
		case unicode.IsSpace(r):
			continue
		default:
			return last
		}
		buf.WriteRune(r)
		last = i
	}
	return last
}

// TokenError indicates a rune that cannot begin any token. It implements
// InputError.
type TokenError struct {
	// Col is the position of the invalid rune.
	Col int
	// Char is the invalid rune.
	Char rune
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.QuoteRune(err.Char))
}

func (err *TokenError) Pos() int {
	return err.Col
}

package basiccalc

import (
	"errors"
	"strconv"
)

// UnexpectedTokenError is an error indicating a token where it is not
// allowed, e.g. an operator where an operand is expected. It implements
// InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token's text.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// EndError is an error indicating that the input ended where an operand was
// required. It implements InputError.
type EndError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EndError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "unexpected end of expression")
}

func (err *EndError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the token that should have been a close
	// parenthesis, or of the unmatched close parenthesis.
	Col int
	// Open is the position of the open parenthesis that was not closed, or 0
	// if the error is a close parenthesis with no open parenthesis.
	Open int
}

func (err *BracketError) Error() string {
	if err.Open == 0 {
		return errpos(err.Col, "close paren with no open paren")
	}
	return errpos(err.Col, "open paren at "+strconv.Itoa(err.Open)+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EndError)(nil)
	_ InputError = (*BracketError)(nil)
)

// IsParseError reports whether err, or any error it wraps, means that tokens
// did not form an expression. Tokenizer errors are not parse errors.
func IsParseError(err error) bool {
	var (
		u *UnexpectedTokenError
		e *EndError
		b *BracketError
	)
	return errors.As(err, &u) || errors.As(err, &e) || errors.As(err, &b)
}

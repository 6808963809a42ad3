package basiccalc

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		err    int // column of expected TokenError, or 0
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []Token{{Text: "0", Kind: TokenNum, Pos: 1}}, 0},
		{"9876543210", []Token{{Text: "9876543210", Kind: TokenNum, Pos: 1}}, 0},
		{"1.0", []Token{{Text: "1.0", Kind: TokenNum, Pos: 1}}, 0},
		{"1.", []Token{{Text: "1.", Kind: TokenNum, Pos: 1}}, 0},
		{"12.34+1", []Token{{Text: "12.34", Kind: TokenNum, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 6}, {Text: "1", Kind: TokenNum, Pos: 7}}, 0},
		{"1 0", []Token{{Text: "10", Kind: TokenNum, Pos: 1}}, 0},
		{" 1 . 5 ", []Token{{Text: "1.5", Kind: TokenNum, Pos: 2}}, 0},
		{"1.1.1", []Token{{Text: "1.1", Kind: TokenNum, Pos: 1}}, 4},
		{".", nil, 1},
		{".1", nil, 1},
		{"1e1", []Token{{Text: "1", Kind: TokenNum, Pos: 1}}, 2},
		// operators
		{"-1", []Token{{Text: "-", Kind: TokenOp, Pos: 1}, {Text: "1", Kind: TokenNum, Pos: 2}}, 0},
		{"1*0", []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "*", Kind: TokenOp, Pos: 2}, {Text: "0", Kind: TokenNum, Pos: 3}}, 0},
		{"++", []Token{{Text: "+", Kind: TokenOp, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 2}}, 0},
		{"4 / 2", []Token{{Text: "4", Kind: TokenNum, Pos: 1}, {Text: "/", Kind: TokenOp, Pos: 3}, {Text: "2", Kind: TokenNum, Pos: 5}}, 0},
		// parens
		{"(1)", []Token{{Text: "(", Kind: TokenOpen, Pos: 1}, {Text: "1", Kind: TokenNum, Pos: 2}, {Text: ")", Kind: TokenClose, Pos: 3}}, 0},
		{")(", []Token{{Text: ")", Kind: TokenClose, Pos: 1}, {Text: "(", Kind: TokenOpen, Pos: 2}}, 0},
		// erroneous symbols
		{"$", nil, 1},
		{"1$", []Token{{Text: "1", Kind: TokenNum, Pos: 1}}, 2},
		{"[1]", nil, 1},
		{"x", nil, 1},
		{"2^3", []Token{{Text: "2", Kind: TokenNum, Pos: 1}}, 2},
		{"1×2", []Token{{Text: "1", Kind: TokenNum, Pos: 1}}, 2},
		{"π+1", nil, 1},
	}

	for _, c := range cases {
		got, err := Tokenize(c.src)
		if len(got) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
		} else {
			for i, want := range c.tokens {
				// End is checked separately.
				g := got[i]
				g.End = 0
				if g != want {
					t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
				}
			}
		}
		if c.err == 0 {
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
			continue
		}
		var te *TokenError
		if !errors.As(err, &te) {
			t.Errorf("scanning %q: want TokenError, got %#v", c.src, err)
			continue
		}
		if te.Pos() != c.err {
			t.Errorf("scanning %q: want error at %d, got %d (%v)", c.src, c.err, te.Pos(), err)
		}
	}
}

func TestTokenEnd(t *testing.T) {
	cases := []struct {
		src  string
		ends []int
	}{
		{"1", []int{2}},
		{"12.34+1", []int{6, 7, 8}},
		{"(1 2", []int{2, 5}},
		{"1 2 +", []int{4, 6}},
		{" 1 . 5 ", []int{7}},
		{"(3)", []int{2, 3, 4}},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.ends) {
			t.Errorf("scanning %q: want %d tokens, got %v", c.src, len(c.ends), toks)
			continue
		}
		for i, want := range c.ends {
			if toks[i].End != want {
				t.Errorf("scanning %q: token %v ends at %d, want %d", c.src, toks[i], toks[i].End, want)
			}
		}
	}
}

func TestTokenErrorMessage(t *testing.T) {
	_, err := Tokenize("1+a")
	if err == nil {
		t.Fatal("no error")
	}
	if got, want := err.Error(), `3: invalid token 'a'`; got != want {
		t.Errorf("wrong message: want %q, got %q", want, got)
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/basiccalc"
)

const (
	banner = "BasicCalculator.\n" +
		"This program evaluates simple math expressions that only contain numbers, parentheses and binary operators +, -, *, and /.\n" +
		"You can either enter an expression or 'q' or 'Q' to exit the program.\n"
	prompt = "Enter an expression $ "
)

// config is the calculator's behavior as chosen by flags, environment, and
// configuration file.
type config struct {
	// debug prints tokens and trees before values.
	debug bool
	// places selects exact decimal evaluation when non-negative.
	places int32
}

// evaluate parses and evaluates one expression and writes its value to w.
// Errors from the expression are returned for the caller to report.
func evaluate(w io.Writer, src string, cfg config, logger zerolog.Logger) error {
	if cfg.debug {
		fmt.Fprintf(w, "Evaluating expression %s\n", src)
	}
	toks, err := basiccalc.Tokenize(src)
	if err != nil {
		return err
	}
	if cfg.debug {
		fmt.Fprintf(w, "Tokens: %s\n", fmtTokens(toks))
	}
	tree, err := basiccalc.Parse(toks)
	if err != nil {
		return err
	}
	logger.Debug().Int("tokens", len(toks)).Stringer("tree", tree).Msg("parsed")
	if cfg.debug {
		fmt.Fprintf(w, "Evaluation tree: %s\n", tree.Sexp())
		fmt.Fprint(w, "Evaluation: ")
	}
	if cfg.places >= 0 {
		d, err := tree.EvalDecimal(cfg.places)
		if err != nil {
			return err
		}
		logger.Debug().Str("result", d.String()).Int32("places", cfg.places).Msg("evaluated exactly")
		fmt.Fprintln(w, d.String())
		return nil
	}
	r, err := tree.Eval()
	if err != nil {
		return err
	}
	logger.Debug().Stringer("result", r).Bool("int", r.IsInt()).Msg("evaluated")
	fmt.Fprintln(w, r)
	return nil
}

// fmtTokens renders tokens as a bracketed list, e.g. [12.34 + 1].
func fmtTokens(toks []basiccalc.Token) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.Text
	}
	return "[" + strings.Join(s, " ") + "]"
}

// evalAll evaluates each expression, writing its value or its error to w.
// The result is false if any expression failed.
func evalAll(w io.Writer, exprs []string, cfg config, logger zerolog.Logger) bool {
	ok := true
	for _, src := range exprs {
		src = strings.TrimSpace(src)
		if err := evaluate(w, src, cfg, logger); err != nil {
			logger.Debug().Err(err).Str("expr", src).Msg("evaluation failed")
			fmt.Fprintln(w, err)
			ok = false
		}
	}
	return ok
}

// repl prompts for expressions on out and reads them from in until q, Q, or
// the end of input. Errors in expressions are reported and do not end the
// loop.
func repl(in io.Reader, out io.Writer, cfg config, logger zerolog.Logger) error {
	fmt.Fprint(out, banner+"\n")
	if cfg.debug {
		fmt.Fprintln(out, "Running with debug mode.")
	}
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			break
		}
		src := strings.TrimSpace(sc.Text())
		if strings.EqualFold(src, "q") {
			break
		}
		if err := evaluate(out, src, cfg, logger); err != nil {
			logger.Debug().Err(err).Str("expr", src).Msg("evaluation failed")
			fmt.Fprintln(out, err)
		}
		fmt.Fprintln(out)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading expressions")
	}
	fmt.Fprintln(out, "\nGoodbye!")
	return nil
}

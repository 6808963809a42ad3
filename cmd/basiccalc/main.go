package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

// defaultConfig is read if it exists. Its keys are flag names.
const defaultConfig = "~/.config/basiccalc.yaml"

type cli struct {
	Config   kong.ConfigFlag `help:"YAML configuration file with flag names as keys." type:"path"`
	Debug    bool            `short:"d" env:"BASICCALC_DEBUG" help:"Print the tokens and evaluation tree of each expression before its value."`
	Places   int32           `env:"BASICCALC_PLACES" default:"-1" help:"Evaluate in exact decimal arithmetic, rounding quotients to this many places. Negative uses integer and float arithmetic."`
	LogLevel string          `env:"BASICCALC_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Level of diagnostics logged to stderr."`
	Exprs    []string        `arg:"" optional:"" name:"expr" help:"Expressions to evaluate. With none, expressions are read interactively."`
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("basiccalc"),
		kong.Description("Evaluate basic math expressions that only contain numbers, parentheses, and the binary operators +, -, *, and /."),
		kong.UsageOnError(),
	}
	return kong.New(c, append(opts, options...)...)
}

func main() {
	var c cli
	parser, err := newParser(&c, yamlConfig(defaultConfig))
	if err != nil {
		panic(err)
	}
	_, err = parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(os.Stderr, c.LogLevel, c.Debug)
	cfg := config{debug: c.Debug, places: c.Places}
	logger.Debug().Bool("debug", cfg.debug).Int32("places", cfg.places).Int("exprs", len(c.Exprs)).Msg("starting")

	if len(c.Exprs) > 0 {
		if !evalAll(os.Stdout, c.Exprs, cfg, logger) {
			os.Exit(1)
		}
		return
	}
	if err := repl(os.Stdin, os.Stdout, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("input failed")
	}
}

// newLogger creates the diagnostics logger. Debug mode lowers the level to
// at least debug.
func newLogger(w io.Writer, level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	if debug && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "basiccalc").Logger().
		Level(lvl)
}

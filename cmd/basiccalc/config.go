package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlLoader reads a YAML mapping of flag names to values. Keys may use
// underscores in place of dashes, e.g. log_level.
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return kong.ResolverFunc(func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		if v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}

// yamlConfig reads flag values from each existing YAML file in paths.
// Values given on the command line take precedence.
func yamlConfig(paths ...string) kong.Option {
	return kong.Configuration(yamlLoader, paths...)
}

// Package config loads the changebase configuration file.
//
// The file is TOML:
//
//  [precision]
//  working = 50  # significant digits kept by compound arithmetic
//  floor = -9    # lowest exponent rendered before eliding
//
//  [defaults]
//  from = "10"   # input base, a number or a name such as "phi"
//  to = "2"      # output base
//  terms = 5     # terms shown by explain
//
// Keys that are absent keep their default values.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/changebase/constant"
	"github.com/calebcase/changebase/explain"
	"github.com/calebcase/changebase/numeric"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// Config is the complete configuration.
type Config struct {
	Precision Precision `toml:"precision"`
	Defaults  Defaults  `toml:"defaults"`
}

// Precision holds the arithmetic precision constants.
type Precision struct {
	Working int32 `toml:"working"`
	Floor   int32 `toml:"floor"`
}

// Defaults holds default command line values.
type Defaults struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Terms int    `toml:"terms"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Precision: Precision{
			Working: numeric.DefaultPrecision,
			Floor:   numeric.DefaultFloor,
		},
		Defaults: Defaults{
			From:  "10",
			To:    "2",
			Terms: explain.DefaultTerms,
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (cfg *Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()

	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)

	_, err = toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value can be used.
func (c *Config) Validate() (err error) {
	err = c.Context().Validate()
	if err != nil {
		return Error.Wrap(err)
	}

	for _, b := range []string{c.Defaults.From, c.Defaults.To} {
		_, err = constant.ParseBase(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	if c.Defaults.Terms < 0 {
		return Error.New("terms must not be negative: %d", c.Defaults.Terms)
	}

	return nil
}

// Context returns the precision context described by the configuration.
func (c *Config) Context() numeric.Context {
	return numeric.Context{
		Precision: c.Precision.Working,
		Floor:     c.Precision.Floor,
	}
}

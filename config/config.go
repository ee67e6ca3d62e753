// config defines the toml file that tells multisum what to compute.
//
// See [Config] for the format of the file itself.
package config

import (
	"bytes"
	"fmt"

	"github.com/goose-lang/multisum"
	"github.com/goose-lang/multisum/util"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config defines the format of the toml file:
//
//	bases = [3, 5]
//	limit = 1000
//	variants = ["*", "!cursor"]
//
//	[[batch]]
//	name = "small"
//	bases = [2]
//	limit = 10
//
// The variants field is a list of patterns, interpreted left to right to build
// the set of variant labels to run, starting with the empty set. Literal
// patterns like "foo" match themselves, "!p" removes anything matching p from
// the set, and the wildcard "*" within a pattern matches any sequence of
// characters.
type Config struct {
	// Defaults to [3, 5].
	Bases []uint64 `toml:"bases"`
	// Exclusive upper bound. Defaults to 1000.
	Limit uint64 `toml:"limit"`
	// Variants to run. Defaults to "*" (all).
	Variants []string `toml:"variants"`
	// Further parameter sets, evaluated with the closed form only.
	Batch []Case `toml:"batch"`
}

// Case is one named parameter set.
type Case struct {
	Name  string   `toml:"name"`
	Bases []uint64 `toml:"bases"`
	Limit uint64   `toml:"limit"`
}

const (
	DefaultLimit = 1000
	primaryName  = "result"
)

// Default is the Project Euler problem: multiples of 3 or 5 below 1000.
func Default() Config {
	return Config{
		Bases:    []uint64{3, 5},
		Limit:    DefaultLimit,
		Variants: []string{"*"},
	}
}

// fileConfig distinguishes keys that are absent from keys set to zero values.
type fileConfig struct {
	Bases    *[]uint64 `toml:"bases"`
	Limit    *uint64   `toml:"limit"`
	Variants []string  `toml:"variants"`
	Batch    []Case    `toml:"batch"`
}

func (f fileConfig) withDefaults() Config {
	c := Default()
	if f.Bases != nil {
		c.Bases = *f.Bases
	}
	if f.Limit != nil {
		c.Limit = *f.Limit
	}
	if len(f.Variants) > 0 {
		c.Variants = f.Variants
	}
	c.Batch = f.Batch
	return c
}

// Parse decodes a toml config. Unknown keys are an error, and absent keys take
// their defaults.
func Parse(raw []byte) (Config, error) {
	var f fileConfig
	d := toml.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()
	if err := d.Decode(&f); err != nil {
		return Config{}, errors.Wrap(err, "could not parse config")
	}
	c := f.withDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the config at path. A missing file gives the default config, as
// does an empty path.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := util.ReadOptionalFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// Validate checks every case's arguments and that batch names are present and
// distinct.
func (c Config) Validate() error {
	seen := make(map[string]bool)
	for i, cs := range c.Cases() {
		if cs.Name == "" {
			return errors.Errorf("case %d has no name", i)
		}
		if seen[cs.Name] {
			return errors.Errorf("duplicate case name %q", cs.Name)
		}
		seen[cs.Name] = true
		if err := multisum.Validate(cs.Bases, cs.Limit); err != nil {
			return errors.Wrapf(err, "case %s", cs.Name)
		}
	}
	return nil
}

// Primary is the case the variants are run on.
func (c Config) Primary() Case {
	return Case{Name: primaryName, Bases: c.Bases, Limit: c.Limit}
}

// Cases returns the primary case followed by the batch cases.
func (c Config) Cases() []Case {
	return append([]Case{c.Primary()}, c.Batch...)
}

func (c Config) Selector() Selector {
	return NewSelector(c.Variants)
}

func (cs Case) String() string {
	return fmt.Sprintf("%s (bases %v, limit %d)", cs.Name, cs.Bases, cs.Limit)
}

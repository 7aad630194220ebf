// Package config loads the document rendered by the markpipe command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/KasperOmsK/markpipe/internal/logger"
)

// EnvPrefix prefixes environment variables overriding file values. Nested
// keys are separated by a double underscore, e.g. MARKPIPE_LOG__LEVEL.
const EnvPrefix = "MARKPIPE_"

const (
	KindUnordered   = "unordered"
	KindOrdered     = "ordered"
	KindDescription = "description"
)

type Config struct {
	Output string        `koanf:"output"` // file path, or "-" for stdout
	Title  string        `koanf:"title"`
	Log    logger.Config `koanf:"log"`
	Lists  []ListConfig  `koanf:"lists"`
}

// ListConfig describes one rendered list.
type ListConfig struct {
	Kind    string        `koanf:"kind"`
	ID      string        `koanf:"id"`
	Class   string        `koanf:"class"`
	Items   []string      `koanf:"items"`
	Entries []EntryConfig `koanf:"entries"` // description lists only
	Skip    []string      `koanf:"skip"`    // items left out of the rendering
	Reverse bool          `koanf:"reverse"`
	Raw     bool          `koanf:"raw"` // items are trusted HTML fragments
	Empty   string        `koanf:"empty"`
}

type EntryConfig struct {
	Term       string `koanf:"term"`
	Definition string `koanf:"definition"`
}

// Load reads the YAML document at path, then applies environment overrides
// and defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if !k.Exists("output") {
		k.Set("output", "-")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.ApplyDefaults()

	for i := range cfg.Lists {
		if cfg.Lists[i].Kind == "" {
			cfg.Lists[i].Kind = KindUnordered
		}
	}

	return &cfg, nil
}

// Validate reports every problem found in c.
func (c *Config) Validate() error {
	var errs []error

	if c.Output == "" {
		errs = append(errs, errors.New("output must be a file path or \"-\""))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	for i, l := range c.Lists {
		switch l.Kind {
		case KindUnordered, KindOrdered:
			if len(l.Entries) > 0 {
				errs = append(errs, fmt.Errorf("lists[%d]: entries are only allowed on %s lists", i, KindDescription))
			}
		case KindDescription:
			if len(l.Items) > 0 {
				errs = append(errs, fmt.Errorf("lists[%d]: %s lists take entries, not items", i, KindDescription))
			}
		default:
			errs = append(errs, fmt.Errorf("lists[%d]: unknown kind %q", i, l.Kind))
		}
	}

	return errors.Join(errs...)
}

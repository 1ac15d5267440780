// Package config loads the showcase configuration from YAML.
//
// A file looks like
//
//	log:
//	  level: debug
//	  console: true
//	memo:
//	  table_size: 256
//	  store: ristretto
//	showcase:
//	  sections: [shapes, numbers]
//
// Missing fields keep their defaults. Unknown fields are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/on-the-ground/pure_ive_go/pure"
)

var (
	ErrUnknownKey     = errors.New("unknown config key")
	ErrUnknownSection = errors.New("unknown showcase section")
)

// Sections are the showcase sections in the order they run.
var Sections = []string{"collection", "shapes", "calculator", "validation", "people", "numbers"}

type Log struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type Memo struct {
	TableSize uint32 `yaml:"table_size"`
	Store     string `yaml:"store"`
}

type Showcase struct {
	Sections []string `yaml:"sections,flow"`
}

type Config struct {
	Log      Log      `yaml:"log"`
	Memo     Memo     `yaml:"memo"`
	Showcase Showcase `yaml:"showcase"`
}

func Default() Config {
	return Config{
		Log:      Log{Level: string(log.LogInfo), Console: true},
		Memo:     Memo{TableSize: 128, Store: string(pure.BackendTrie)},
		Showcase: Showcase{Sections: slices.Clone(Sections)},
	}
}

// Load reads path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if c.Memo.TableSize == 0 {
		return fmt.Errorf("%s: must be positive", KeyMemoTableSize)
	}
	if _, err := pure.ParseBackend(c.Memo.Store); err != nil {
		return fmt.Errorf("%s: %w", KeyMemoStore, err)
	}
	for _, s := range c.Showcase.Sections {
		if !slices.Contains(Sections, s) {
			return fmt.Errorf("%s: %w: %q", KeyShowcaseSections, ErrUnknownSection, s)
		}
	}
	return nil
}

func (c Config) LogLevel() log.LogLevel {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

func (c Config) MemoBackend() pure.Backend {
	backend, _ := pure.ParseBackend(c.Memo.Store)
	return backend
}

// Lookup resolves a dotted key such as "config.memo.table_size".
func (c Config) Lookup(key string) (any, error) {
	switch key {
	case KeyLogLevel:
		return c.Log.Level, nil
	case KeyLogConsole:
		return c.Log.Console, nil
	case KeyMemoTableSize:
		return c.Memo.TableSize, nil
	case KeyMemoStore:
		return c.Memo.Store, nil
	case KeyShowcaseSections:
		return slices.Clone(c.Showcase.Sections), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// LookupAs resolves key and asserts its value to T.
func LookupAs[T any](c Config, key string) (T, error) {
	var zero T

	raw, err := c.Lookup(key)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected type %T", key, raw)
	}
	return v, nil
}

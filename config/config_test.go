package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/pure_ive_go/config"
	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/on-the-ground/pure_ive_go/pure"
)

func TestParse_KeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := config.Parse([]byte("memo:\n  store: ristretto\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Memo.Store = "ristretto"
	assert.Equal(t, want, cfg)
	assert.Equal(t, pure.BackendRistretto, cfg.MemoBackend())
	assert.Equal(t, log.LogInfo, cfg.LogLevel())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Full(t *testing.T) {
	data := []byte(`
log:
  level: debug
  console: false
memo:
  table_size: 256
  store: trie
showcase:
  sections: [shapes, numbers]
`)
	cfg, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, log.LogDebug, cfg.LogLevel())
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, uint32(256), cfg.Memo.TableSize)
	assert.Equal(t, []string{"shapes", "numbers"}, cfg.Showcase.Sections)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "memo:\n  size: 3\n",
		"log level":       "log:\n  level: loud\n",
		"zero table size": "memo:\n  table_size: 0\n",
		"store":           "memo:\n  store: redis\n",
		"section":         "showcase:\n  sections: [graphs]\n",
		"malformed":       "log: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("showcase:\n  sections: [graphs]\n"))
	assert.ErrorIs(t, err, config.ErrUnknownSection)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "showcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, log.LogWarn, cfg.LogLevel())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLookup(t *testing.T) {
	cfg := config.Default()
	for _, key := range config.Keys {
		_, err := cfg.Lookup(key)
		assert.NoError(t, err, key)
	}

	v, err := cfg.Lookup(config.KeyMemoTableSize)
	require.NoError(t, err)
	assert.Equal(t, uint32(128), v)

	v, err = cfg.Lookup("config.memo.table_size")
	require.NoError(t, err)
	assert.Equal(t, uint32(128), v)

	_, err = cfg.Lookup("config.memo")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestLookupAs(t *testing.T) {
	cfg := config.Default()

	size, err := config.LookupAs[uint32](cfg, config.KeyMemoTableSize)
	require.NoError(t, err)
	assert.Equal(t, uint32(128), size)

	sections, err := config.LookupAs[[]string](cfg, config.KeyShowcaseSections)
	require.NoError(t, err)
	assert.Equal(t, config.Sections, sections)

	_, err = config.LookupAs[int](cfg, config.KeyMemoTableSize)
	assert.ErrorContains(t, err, "unexpected type uint32")

	_, err = config.LookupAs[string](cfg, "config.nope")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

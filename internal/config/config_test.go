package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindispell/pkg/options"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "REDIS_ADDR", "MAX_TEXT_RUNES", "REQUEST_TIMEOUT", "RATE_LIMIT"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5000, cfg.MaxTextRunes)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("MAX_BATCH", "not-a-number")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:7000\nREDIS_DB=3\nRATE_LIMIT=2.5\nREQUEST_TIMEOUT=250ms\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("REDIS_DB")
		os.Unsetenv("RATE_LIMIT")
		os.Unsetenv("REQUEST_TIMEOUT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddr, "environment wins over .env")
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 100, cfg.MaxBatch)
}

func TestTuningOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_candidates: 3
distance_decay: 1.2
cache_size: 0
context_scoring: true
skip_non_words: true
`), 0o644))

	cfg := &Config{TuningFile: path}
	opts, err := cfg.EngineOptions()
	require.NoError(t, err)

	o := options.Resolve(opts...)
	assert.Equal(t, 3, o.MaxCandidates)
	assert.Equal(t, 1.2, o.DistanceDecay)
	assert.Zero(t, o.CacheSize)
	assert.True(t, o.ContextScoring)
	assert.True(t, o.SkipNonWords)
	assert.False(t, o.PhoneticBonus)
	assert.Equal(t, options.DefaultOptions.BoundedDistance, o.BoundedDistance)
}

func TestTuningErrors(t *testing.T) {
	cfg := &Config{TuningFile: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := cfg.EngineOptions()
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max_candidates: [1, 2"), 0o644))
	_, err = LoadTuning(bad)
	assert.Error(t, err)

	opts, err := (&Config{}).EngineOptions()
	assert.NoError(t, err)
	assert.Nil(t, opts)

	var nilTuning *Tuning
	assert.Nil(t, nilTuning.Options())
}

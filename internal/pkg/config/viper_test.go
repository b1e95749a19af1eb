package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  name: "fitlog"
  debug: true
  server:
    cors: "http://a.test,http://b.test"
    http:
      read_timeout_seconds: 15
database:
  pool:
    max_conns: 10
instrument:
  trace_sample_ratio: 0.5
  ttl_minutes: 2
`

func newTestConfig(t *testing.T) *Viper {
	t.Helper()

	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	require.NoError(t, err)
	t.Cleanup(func() { cfg.Close() })

	return cfg
}

func TestViperFromBytesRequiresType(t *testing.T) {
	_, err := NewViperFromBytes("  ", []byte(testYAML))

	assert.Error(t, err)
}

func TestViperGetters(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, "fitlog", cfg.GetString("app.name"))
	assert.True(t, cfg.GetBool("app.debug"))
	assert.Equal(t, 10, cfg.GetInt("database.pool.max_conns"))
	assert.Equal(t, int32(10), cfg.GetInt32("database.pool.max_conns"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetArray("app.server.cors"))
	assert.Equal(t, 15*time.Second, cfg.GetSecond("app.server.http.read_timeout_seconds"))
	assert.Equal(t, 2*time.Minute, cfg.GetMinute("instrument.ttl_minutes"))
}

func TestViperMissingKeys(t *testing.T) {
	cfg := newTestConfig(t)

	assert.Equal(t, "", cfg.GetString("nope"))
	assert.False(t, cfg.GetBool("nope"))
	assert.Equal(t, 0, cfg.GetInt("nope"))
	assert.Equal(t, time.Duration(0), cfg.GetSecond("nope"))
}

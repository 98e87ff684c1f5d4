package settings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaplate/settings/conferr"
)

type serverSettings struct {
	Host    string        `setting:"host" validate:"required"`
	Port    int           `setting:"port" validate:"min=1,max=65535"`
	Debug   bool          `setting:"debug"`
	Timeout time.Duration `setting:"timeout"`
	Origins []string      `setting:"origins"`
	TLS     tlsSettings   `setting:"tls"`
}

type tlsSettings struct {
	CertFile string `setting:"cert_file"`
}

func TestBind(t *testing.T) {
	acc := newAccessor(map[string]string{
		"server.host":          "0.0.0.0",
		"server.port":          "9090",
		"server.debug":         "true",
		"server.timeout":       "30s",
		"server.origins":       "a.example,b.example",
		"server.tls.cert_file": "/etc/certs/server.pem",
	}, nil)

	cfg := serverSettings{Host: "127.0.0.1", Port: 8080, Timeout: 10 * time.Second}
	require.NoError(t, acc.Bind("server", &cfg))

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Origins)
	assert.Equal(t, "/etc/certs/server.pem", cfg.TLS.CertFile)
}

func TestBindKeepsDefaultsForAbsentKeys(t *testing.T) {
	acc := newAccessor(map[string]string{
		"server.host": "api.example",
	}, nil)

	cfg := serverSettings{
		Host:    "127.0.0.1",
		Port:    8080,
		Timeout: 10 * time.Second,
		Origins: []string{"localhost"},
	}
	require.NoError(t, acc.Bind("server", &cfg))

	assert.Equal(t, "api.example", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"localhost"}, cfg.Origins)
}

func TestBindValidationFailure(t *testing.T) {
	acc := newAccessor(map[string]string{
		"server.port": "70000",
	}, nil)

	cfg := serverSettings{Host: "api.example"}
	err := acc.Bind("server", &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, conferr.ErrInvalid)
	assert.Contains(t, err.Error(), "Port")
}

func TestBindRequiredFieldMissing(t *testing.T) {
	acc := newAccessor(map[string]string{
		"server.port": "8080",
	}, nil)

	cfg := serverSettings{Port: 1}
	err := acc.Bind("server", &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, conferr.ErrInvalid)
	assert.Contains(t, err.Error(), "Host")
}

func TestBindParseFailure(t *testing.T) {
	acc := newAccessor(map[string]string{
		"server.host": "api.example",
		"server.port": "not-a-port",
	}, nil)

	cfg := serverSettings{}
	err := acc.Bind("server", &cfg)
	assert.ErrorIs(t, err, conferr.ErrParse)
}

func TestBindRejectsNonStructTargets(t *testing.T) {
	acc := newAccessor(nil, nil)

	var n int
	assert.ErrorIs(t, acc.Bind("server", &n), conferr.ErrInvalid)
	assert.ErrorIs(t, acc.Bind("server", serverSettings{}), conferr.ErrInvalid)
	assert.ErrorIs(t, acc.Bind("server", nil), conferr.ErrInvalid)
}

func TestBindTimeField(t *testing.T) {
	acc := newAccessor(map[string]string{
		"job.not_before": "2026-08-26T00:00:00Z",
	}, nil)

	var cfg struct {
		NotBefore time.Time `setting:"not_before"`
	}
	require.NoError(t, acc.Bind("job", &cfg))
	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), cfg.NotBefore)
}

func TestBindUnsupportedFieldType(t *testing.T) {
	acc := newAccessor(map[string]string{"x.m": "1"}, nil)

	var cfg struct {
		M map[string]string `setting:"m"`
	}
	assert.ErrorIs(t, acc.Bind("x", &cfg), conferr.ErrInvalid)
}

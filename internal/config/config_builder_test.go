package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a non-zero field from a later
// config wins while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{Driver: DriverPostgres}},
		},
		&StructuredConfig{
			Server: Server{HTTPAddress: "0.0.0.0:9000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

// ── withDefaults / withFlags / withFile ──────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultKeepMessages, cfg.Workers.KeepMessages)
}

func TestWithFlags_OverrideDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-d", "file.db", "-db-driver", "sqlite3"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
}

func TestWithFlags_Error(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-no-such-flag"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestWithFile_FromFlagPath(t *testing.T) {
	p := writeTempConfig(t, "config.json", `{"server": {"http_address": "10.0.0.1:7000"}}`)

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", p}).
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:7000", cfg.Server.HTTPAddress)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "absent.json")})

	_, err := b.withFile().build()
	require.Error(t, err)
}

// ── validation ────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = "postgres://localhost/db"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "bad driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, want: ErrInvalidStorageConfigs},
		{name: "negative keep", mutate: func(c *StructuredConfig) { c.Workers.KeepMessages = -1 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClientConfig_DefaultDSN(t *testing.T) {
	cfg := defaultConfig()

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, defaultClientDSN, clientCfg.Storage.DB.DSN)
	assert.Equal(t, defaultAdapterAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Duration(0), clientCfg.Adapter.RequestTimeout)
	assert.NoError(t, clientCfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"},
		Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "client.db"
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	assert.NoError(t, cfg.validate())
}

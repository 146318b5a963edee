package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/querie/pkg/gateway"

	// Register gateways via init()
	_ "github.com/leapstack-labs/querie/pkg/gateways/postgres"
	_ "github.com/leapstack-labs/querie/pkg/gateways/sqlite"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "querie.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// testFlags mirrors the persistent flags registered by the root command.
func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("dsn", "", "")
	fs.String("type", "", "")
	fs.String("database", "", "")
	fs.Duration("poll-interval", 0, "")
	fs.String("log-file", "", "")
	fs.String("log-level", "", "")
	fs.Bool("no-color", false, "")
	return fs
}

func TestTargetConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		target    TargetConfig
		wantErr   bool
		errSubstr string
	}{
		{name: "empty type", target: TargetConfig{Type: ""}, wantErr: true, errSubstr: "target type is required"},
		{name: "valid postgres", target: TargetConfig{Type: "postgres"}},
		{name: "valid sqlite uppercase", target: TargetConfig{Type: "SQLite"}},
		{name: "unknown type mysql", target: TargetConfig{Type: "mysql"}, wantErr: true, errSubstr: "unknown gateway type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTargetConfig_ValidateUnknownListsAvailable(t *testing.T) {
	err := (&TargetConfig{Type: "oracle"}).Validate()

	var unknown *gateway.UnknownGatewayError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Available, "postgres")
	assert.Contains(t, unknown.Available, "sqlite")
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Target.Type)
	assert.Equal(t, DefaultPostgresDSN, cfg.Target.DSN)
	assert.Equal(t, DefaultPostgresPort, cfg.Target.Port)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, `
target:
  type: postgres
  host: db.internal
  port: 6543
  database: analytics
  user: reader
  options:
    sslmode: require
poll_interval: 200ms
no_color: true
log:
  file: querie.log
  level: debug
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Target.Host)
	assert.Equal(t, 6543, cfg.Target.Port)
	assert.Equal(t, "analytics", cfg.Target.Database)
	assert.Equal(t, "reader", cfg.Target.User)
	assert.Equal(t, map[string]string{"sslmode": "require"}, cfg.Target.Options)
	assert.Empty(t, cfg.Target.DSN, "host set, no default DSN")
	assert.Equal(t, 200*time.Millisecond, cfg.PollInterval)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, LogConfig{File: "querie.log", Level: "debug"}, cfg.Log)
	assert.Equal(t, "querie.yaml", filepath.Base(cfg.ConfigFile))
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	other := t.TempDir()
	path := filepath.Join(other, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("target:\n  type: sqlite\n  database: app.db\n"), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, "app.db", cfg.Target.Database)
	assert.Empty(t, cfg.Target.DSN)
	assert.Zero(t, cfg.Target.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "target:\n  type: postgres\n  dsn: host=file\npoll_interval: 1s\n")

	t.Setenv("QUERIE_TARGET__DSN", "host=env")
	t.Setenv("QUERIE_POLL_INTERVAL", "75ms")
	t.Setenv("QUERIE_LOG__LEVEL", "warn")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "host=env", cfg.Target.DSN)
	assert.Equal(t, 75*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUERIE_TARGET__TYPE", "postgres")
	t.Setenv("QUERIE_TARGET__DSN", "host=env")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{
		"--type", "sqlite",
		"--database", ":memory:",
		"--dsn", "",
		"--poll-interval", "10ms",
		"--no-color",
		"--log-level", "debug",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Target.Type)
	assert.Equal(t, ":memory:", cfg.Target.Database)
	assert.Empty(t, cfg.Target.DSN)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "poll_interval: 300ms\n")

	flags := testFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 300*time.Millisecond, cfg.PollInterval)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, "target:\n  type: postgres\n  host: localhost\n  password: ${QUERIE_TEST_PW}\n  user: ${QUERIE_TEST_MISSING}\n")
	t.Setenv("QUERIE_TEST_PW", "s3cret")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Target.Password)
	assert.Equal(t, "${QUERIE_TEST_MISSING}", cfg.Target.User, "unknown variables are kept")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		errSubstr string
	}{
		{"unknown type", "target:\n  type: mysql\n", "unknown gateway type"},
		{"zero poll interval", "poll_interval: 0s\n", "poll_interval must be positive"},
		{"bad log level", "log:\n  level: loud\n", "invalid log level"},
		{"bad duration", "poll_interval: soon\n", "unable to decode config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			writeConfig(t, dir, tt.yaml)

			_, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestTargetConfig_GatewayConfig(t *testing.T) {
	target := &TargetConfig{
		Type:     "postgres",
		DSN:      "host=x",
		Host:     "h",
		Port:     1,
		Database: "d",
		User:     "u",
		Password: "p",
		Options:  map[string]string{"sslmode": "disable"},
	}

	gc := target.GatewayConfig()
	assert.Equal(t, gateway.Config{
		Type: "postgres", DSN: "host=x", Path: "d", Host: "h", Port: 1,
		Database: "d", Username: "u", Password: "p",
		Options: map[string]string{"sslmode": "disable"},
	}, gc)

	gc.Options["sslmode"] = "require"
	assert.Equal(t, "disable", target.Options["sslmode"], "options are copied")

	var nilTarget *TargetConfig
	assert.Equal(t, gateway.Config{}, nilTarget.GatewayConfig())
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "querie.log")
		logger, closer, err := NewLogger(LogConfig{File: path, Level: "debug"}, nil)
		require.NoError(t, err)

		logger.Debug("hello", slog.String("query_id", "abc"))
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=hello")
		assert.Contains(t, string(data), "query_id=abc")
	})

	t.Run("level filters", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "querie.log")
		logger, closer, err := NewLogger(LogConfig{File: path, Level: "warn"}, nil)
		require.NoError(t, err)

		logger.Info("skipped")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("discard without file", func(t *testing.T) {
		logger, closer, err := NewLogger(LogConfig{}, nil)
		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.NoError(t, closer.Close())
	})

	t.Run("bad file", func(t *testing.T) {
		_, _, err := NewLogger(LogConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")}, nil)
		assert.Error(t, err)
	})
}

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	_, ok := GetConfig(ctx)
	assert.False(t, ok)
	assert.NotNil(t, GetLogger(ctx), "fallback logger")

	cfg := &Config{PollInterval: time.Second}
	logger := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)

	got, ok := GetConfig(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, ctx.Value(LoggerKey()))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"access": map[string]any{
			"secret": "",
			"expiry": "15m",
		},
		"oauth": map[string]any{
			"clientId":     "",
			"clientSecret": "",
			"callbackUrl":  "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ACCESS_SECRET", want: "access.secret"},
		{envKey: "ACCESS_EXPIRY", want: "access.expiry"},
		{envKey: "OAUTH_CLIENT_ID", want: "oauth.clientId"},
		{envKey: "OAUTH_CLIENT_SECRET", want: "oauth.clientSecret"},
		{envKey: "OAUTH_CALLBACK_URL", want: "oauth.callbackUrl"},
		{envKey: "OAUTH__CLIENTID", want: "oauth.clientId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testConfigYAML = `
env:
  serviceName: linkauth
  log:
    level: debug
storage:
  driver: memory
access:
  secret: ""
  expiry: 15m
refresh:
  secret: ""
  expiry: 168h
oauth:
  enabled: true
  clientId: ""
  clientSecret: ""
  callbackUrl: ""
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("ACCESS_SECRET", "access-secret")
	t.Setenv("ACCESS_EXPIRY", "5m")
	t.Setenv("REFRESH_SECRET", "refresh-secret")
	t.Setenv("OAUTH_CLIENT_ID", "client-id")
	t.Setenv("OAUTH_CLIENT_SECRET", "client-secret")
	t.Setenv("OAUTH_CALLBACK_URL", "http://localhost/cb")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	assert.Equal(t, "access-secret", cfg.Access.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Access.Expiry)
	assert.Equal(t, "refresh-secret", cfg.Refresh.Secret)
	assert.Equal(t, 168*time.Hour, cfg.Refresh.Expiry)
	require.NotNil(t, cfg.OAuth)
	assert.Equal(t, "client-id", cfg.OAuth.ClientID)
	assert.Equal(t, "client-secret", cfg.OAuth.ClientSecret)
	assert.Equal(t, "http://localhost/cb", cfg.OAuth.CallbackURL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultUsernameAttempts, cfg.Auth.UsernameAttempts)
	assert.NoError(t, cfg.Validate())
}

const postgresConfigYAML = `
storage:
  driver: postgres
  autoMigrate: true
postgres:
  master:
    host: db.internal
    port: "5432"
    userName: linkauth
    password: ""
  dbName: linkauth
  sslMode: disable
`

func TestLoadWithEnv_PostgresConnection(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(postgresConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("POSTGRES_MASTER_PASSWORD", "s3cret")
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0.internal")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Postgres)
	assert.True(t, cfg.Storage.AutoMigrate)
	assert.Equal(t, "db.internal", cfg.Postgres.Master.Host)
	assert.Equal(t, "linkauth", cfg.Postgres.Master.UserName)
	assert.Equal(t, "s3cret", cfg.Postgres.Master.Password)

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0.internal", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "not found")
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverMemory
	cfg.Access = TokenConfig{Secret: "a", Expiry: time.Minute}
	cfg.Refresh = TokenConfig{Secret: "r", Expiry: time.Hour}
	cfg.applyDefaults()

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "missing access secret",
			mutate:  func(cfg *Config) { cfg.Access.Secret = "" },
			wantErr: "must be provided",
		},
		{
			name:    "shared secret",
			mutate:  func(cfg *Config) { cfg.Refresh.Secret = cfg.Access.Secret },
			wantErr: "must differ",
		},
		{
			name:    "access outlives refresh",
			mutate:  func(cfg *Config) { cfg.Access.Expiry = 2 * time.Hour },
			wantErr: "must be shorter",
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *Config) { cfg.Auth.BcryptCost = 40 },
			wantErr: "bcryptCost",
		},
		{
			name:    "username attempts below one",
			mutate:  func(cfg *Config) { cfg.Auth.UsernameAttempts = -1 },
			wantErr: "usernameAttempts",
		},
		{
			name: "oauth enabled without client",
			mutate: func(cfg *Config) {
				cfg.OAuth = &OAuthConfig{Enabled: true}
			},
			wantErr: "oauth.clientId",
		},
		{
			name:    "postgres without host",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = StorageDriverPostgres },
			wantErr: "postgres.master.host",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mongo" },
			wantErr: "unknown storage.driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

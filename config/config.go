// Package config loads and validates the service configuration.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultBcryptCost         = 10
	defaultUsernameAttempts   = 1
	defaultStoreTimeout       = 5 * time.Second
	defaultAccessExpiry       = 15 * time.Minute
	defaultRefreshExpiry      = 7 * 24 * time.Hour
	defaultRateLimit          = 10
	defaultRateLimitWindow    = time.Minute

	// bcrypt rejects costs outside [4, 31].
	minBcryptCost = 4
	maxBcryptCost = 31

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		// AutoMigrate applies the embedded schema migrations on start.
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Access and Refresh map to ACCESS_SECRET, ACCESS_EXPIRY, REFRESH_SECRET and REFRESH_EXPIRY.
	Access  TokenConfig `json:"access" yaml:"access"`
	Refresh TokenConfig `json:"refresh" yaml:"refresh"`

	// OAuth maps to OAUTH_CLIENT_ID, OAUTH_CLIENT_SECRET and OAUTH_CALLBACK_URL.
	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// TokenConfig holds the signing secret and lifetime of one token kind.
type TokenConfig struct {
	Secret string        `json:"secret" yaml:"secret"`
	Expiry time.Duration `json:"expiry" yaml:"expiry"`
}

// OAuthConfig configures the Google authorization-code flow.
type OAuthConfig struct {
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	CallbackURL  string   `json:"callbackUrl" yaml:"callbackUrl"`
	FrontendURL  string   `json:"frontendUrl" yaml:"frontendUrl"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
	// UsernameAttempts bounds suffix retries when the derived handle is taken. 1 checks a single suffix.
	UsernameAttempts int           `json:"usernameAttempts" yaml:"usernameAttempts"`
	StoreTimeout     time.Duration `json:"storeTimeout" yaml:"storeTimeout"`
	Issuer           string        `json:"issuer" yaml:"issuer"`
}

// RateLimitConfig throttles the auth routes per client IP.
type RateLimitConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Limit   int           `json:"limit" yaml:"limit"`
	Window  time.Duration `json:"window" yaml:"window"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// OAUTH_CLIENT_ID -> oauth.clientId, aligned with the keys already in the YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml, overlays the environment, fills defaults and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}
	if cfg.Access.Expiry == 0 {
		cfg.Access.Expiry = defaultAccessExpiry
	}
	if cfg.Refresh.Expiry == 0 {
		cfg.Refresh.Expiry = defaultRefreshExpiry
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.UsernameAttempts == 0 {
		cfg.Auth.UsernameAttempts = defaultUsernameAttempts
	}
	if cfg.Auth.StoreTimeout == 0 {
		cfg.Auth.StoreTimeout = defaultStoreTimeout
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.Limit == 0 {
		cfg.RateLimit.Limit = defaultRateLimit
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
}

// Validate checks the settings once at startup.
func (cfg *Config) Validate() error {
	if cfg.Access.Secret == "" || cfg.Refresh.Secret == "" {
		return errors.New("access.secret and refresh.secret must be provided")
	}
	if cfg.Access.Secret == cfg.Refresh.Secret {
		return errors.New("access.secret and refresh.secret must differ")
	}
	if cfg.Access.Expiry <= 0 || cfg.Refresh.Expiry <= 0 {
		return errors.New("token expiries must be positive")
	}
	if cfg.Access.Expiry >= cfg.Refresh.Expiry {
		return errors.Errorf("access.expiry (%s) must be shorter than refresh.expiry (%s)", cfg.Access.Expiry, cfg.Refresh.Expiry)
	}

	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
			return errors.Errorf("auth.bcryptCost must be within [%d, %d], got %d", minBcryptCost, maxBcryptCost, cfg.Auth.BcryptCost)
		}
		if cfg.Auth.UsernameAttempts < 1 {
			return errors.New("auth.usernameAttempts must be at least 1")
		}
	}

	if cfg.OAuth != nil && cfg.OAuth.Enabled {
		if cfg.OAuth.ClientID == "" || cfg.OAuth.ClientSecret == "" || cfg.OAuth.CallbackURL == "" {
			return errors.New("oauth.clientId, oauth.clientSecret and oauth.callbackUrl are required when oauth is enabled")
		}
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if cfg.Postgres == nil || cfg.Postgres.Master.Host == "" {
			return errors.New("postgres.master.host is required for the postgres storage driver")
		}
	default:
		return errors.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	segments = dropEmpty(segments)
	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		matched, next, consumed, ok := findExistingSegment(current, segments[i:])
		if ok {
			canonical = append(canonical, matched)
			current = next
			i += consumed

			continue
		}

		canonical = append(canonical, segments[i])
		current = nil
		i++
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment matches the longest run of leading segments against a key
// of current, so CLIENT_ID resolves to clientId.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, consumed int, ok bool) {
	if len(current) == 0 {
		return "", nil, 0, false
	}

	for n := len(segments); n > 0; n-- {
		needle := normalizeToken(strings.Join(segments[:n], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, n, true
		}
	}

	return "", nil, 0, false
}

func dropEmpty(segments []string) []string {
	out := segments[:0]
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

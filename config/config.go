package config

import (
	"encoding/base64"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// MinBcryptCost is the lowest bcrypt cost accepted for password hashes.
	MinBcryptCost = 10
	// MinSecretBytes is the minimum decoded length of the token signing key.
	MinSecretBytes = 32
	// MaxLeeway bounds the clock tolerance applied when verifying tokens.
	MaxLeeway = 60 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Blackout BlackoutConfig `json:"blackout" yaml:"blackout"`
}

// BlackoutConfig holds the authentication settings.
type BlackoutConfig struct {
	// Route prefix for every authentication endpoint
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	JWT    JWTConfig    `json:"jwt" yaml:"jwt"`
	Signup SignupConfig `json:"signup" yaml:"signup"`
	TOTP   TOTPConfig   `json:"totp" yaml:"totp"`
	QRCode QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// JWTConfig defines token signing and lifetimes
type JWTConfig struct {
	// Base64 encoded HMAC key, at least 32 bytes once decoded
	Secret string `json:"secret" yaml:"secret"`

	AccessTokenExp  time.Duration `json:"accessTokenExp" yaml:"accessTokenExp"`
	RefreshTokenExp time.Duration `json:"refreshTokenExp" yaml:"refreshTokenExp"`

	// Client-visible refresh lifetime reported when rememberMe is false
	RefreshTokenExpNoRemember time.Duration `json:"refreshTokenExpNoRemember" yaml:"refreshTokenExpNoRemember"`

	Leeway time.Duration `json:"leeway" yaml:"leeway"`
}

// SignupConfig gates self-service registration
type SignupConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	DefaultRole string `json:"defaultRole" yaml:"defaultRole"`
}

// TOTPConfig defines second factor enrollment
type TOTPConfig struct {
	// Issuer shown by authenticator apps
	AppName       string `json:"appName" yaml:"appName"`
	RecoveryCodes int    `json:"recoveryCodes" yaml:"recoveryCodes"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// ConnectionConfig addresses a single PostgreSQL server
type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// PostgresConfig defines the primary, optional read replicas and pool settings
type PostgresConfig struct {
	Master   ConnectionConfig   `json:"master" yaml:"master"`
	Replicas []ConnectionConfig `json:"replicas" yaml:"replicas"`
	DBName   string             `json:"dbName" yaml:"dbName"`
	SSLMode  string             `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`

	// Apply embedded schema migrations on startup
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// DSN builds a connection URL for conn against the configured database.
func (p *PostgresConfig) DSN(conn ConnectionConfig) string {
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conn.UserName, conn.Password),
		Host:     conn.Host + ":" + conn.Port,
		Path:     "/" + p.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String()
}

// Default returns the configuration used when no file overrides a key.
// The signing secret has no default and must be supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.Env.Env = "development"
	cfg.Env.ServiceName = "blackout"
	cfg.Env.Log.Level = "info"
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	cfg.Blackout = BlackoutConfig{
		BaseURL: "/api",
		JWT: JWTConfig{
			AccessTokenExp:            15 * time.Minute,
			RefreshTokenExp:           30 * 24 * time.Hour,
			RefreshTokenExpNoRemember: time.Hour,
		},
		Signup: SignupConfig{
			Enabled:     true,
			DefaultRole: "USER",
		},
		TOTP: TOTPConfig{
			AppName:       "blackout",
			RecoveryCodes: 8,
		},
		QRCode: QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
		},
		BcryptCost: MinBcryptCost,
	}

	return cfg
}

// Validate rejects configurations the authentication core cannot start with.
func (c *Config) Validate() error {
	b := c.Blackout

	if _, err := DecodeSecret(b.JWT.Secret); err != nil {
		return err
	}
	if b.JWT.AccessTokenExp <= 0 || b.JWT.RefreshTokenExp <= 0 || b.JWT.RefreshTokenExpNoRemember <= 0 {
		return errors.New("blackout.jwt token lifetimes must be positive")
	}
	if b.JWT.Leeway < 0 || b.JWT.Leeway > MaxLeeway {
		return errors.Errorf("blackout.jwt.leeway must be between 0 and %s", MaxLeeway)
	}
	if b.BaseURL != "" && !strings.HasPrefix(b.BaseURL, "/") {
		return errors.Errorf("blackout.baseUrl %q must start with /", b.BaseURL)
	}
	if b.TOTP.RecoveryCodes <= 0 {
		return errors.New("blackout.totp.recoveryCodes must be positive")
	}

	return nil
}

// DecodeSecret decodes the base64 signing key and enforces its minimum length.
func DecodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("blackout.jwt.secret is required")
	}

	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, errors.Wrap(err, "blackout.jwt.secret is not valid base64")
	}
	if len(key) < MinSecretBytes {
		return nil, errors.Errorf("blackout.jwt.secret must decode to at least %d bytes, got %d", MinSecretBytes, len(key))
	}

	return key, nil
}

// LoadWithEnv loads <currEnv>.yaml through koanf over defaults, then applies environment overrides.
func LoadWithEnv[T any](defaults *T, currEnv string, configPath ...string) (*T, error) {
	cfg := defaults
	if cfg == nil {
		cfg = new(T)
	}
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: BLACKOUT_JWT_SECRET -> blackout.jwt.secret
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// An optional .env file seeds the process environment before koanf reads it.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv(Default(), "config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Blackout.BcryptCost < MinBcryptCost {
		cfg.Blackout.BcryptCost = MinBcryptCost
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
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

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
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
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

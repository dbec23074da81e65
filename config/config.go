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

	// Documented fallbacks. The WhatsApp pair mirrors what the share link
	// uses when the operator configures nothing.
	defaultWhatsAppNumber   = "5713761694"
	defaultWhatsAppGreeting = "hola"
	defaultAppBaseURL       = "http://localhost:8080"
	defaultLoginPath        = "/auth/login"
	defaultMigrationsDir    = "migrations"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// App holds values shared across deliveries, such as the public base URL
	// used when building redirect targets.
	App *AppConfig `json:"app" yaml:"app"`

	// Auth configures the hosted identity provider and local token checks.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Session configures the request-level session gate.
	Session *SessionConfig `json:"session" yaml:"session"`

	// WhatsApp configures the shareable deep link.
	WhatsApp *WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`

	// QRCode configures share-link QR code rendering.
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Migrations configures the migration CLI.
	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`
}

// AppConfig defines application-wide settings.
type AppConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// AuthConfig defines the hosted auth provider connection and the shared
// secret used to verify the JWTs it issues.
type AuthConfig struct {
	ProviderURL string `json:"providerUrl" yaml:"providerUrl"`
	AnonKey     string `json:"anonKey" yaml:"anonKey"`
	ServiceKey  string `json:"serviceKey" yaml:"serviceKey"`
	JWTSecret   string `json:"jwtSecret" yaml:"jwtSecret"`
	CookieName  string `json:"cookieName" yaml:"cookieName"`
}

// SessionConfig defines which paths the session gate protects and where it
// sends unauthenticated traffic.
type SessionConfig struct {
	ProtectedPrefixes []string `json:"protectedPrefixes" yaml:"protectedPrefixes"`
	ExemptPaths       []string `json:"exemptPaths" yaml:"exemptPaths"`
	LoginPath         string   `json:"loginPath" yaml:"loginPath"`
}

// WhatsAppConfig defines the deep-link defaults.
type WhatsAppConfig struct {
	Number   string `json:"number" yaml:"number"`
	Greeting string `json:"greeting" yaml:"greeting"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MigrationsConfig defines where the migration CLI reads SQL files from.
type MigrationsConfig struct {
	Dir string `json:"dir" yaml:"dir"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills the documented fallbacks for optional sections so the
// rest of the code never branches on a nil App/WhatsApp/Session section.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.App == nil {
		cfg.App = &AppConfig{}
	}
	if strings.TrimSpace(cfg.App.BaseURL) == "" {
		cfg.App.BaseURL = defaultAppBaseURL
	}
	cfg.App.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.App.BaseURL), "/")

	if cfg.WhatsApp == nil {
		cfg.WhatsApp = &WhatsAppConfig{}
	}
	if strings.TrimSpace(cfg.WhatsApp.Number) == "" {
		cfg.WhatsApp.Number = defaultWhatsAppNumber
	}
	if strings.TrimSpace(cfg.WhatsApp.Greeting) == "" {
		cfg.WhatsApp.Greeting = defaultWhatsAppGreeting
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if len(cfg.Session.ProtectedPrefixes) == 0 {
		cfg.Session.ProtectedPrefixes = []string{"/dashboard"}
	}
	if len(cfg.Session.ExemptPaths) == 0 {
		cfg.Session.ExemptPaths = []string{"/api/health", "/auth/callback"}
	}
	if strings.TrimSpace(cfg.Session.LoginPath) == "" {
		cfg.Session.LoginPath = defaultLoginPath
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if strings.TrimSpace(cfg.Auth.CookieName) == "" {
		cfg.Auth.CookieName = "vitrina-access-token"
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if strings.TrimSpace(cfg.QRCode.ErrorCorrectionLevel) == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}

	if cfg.Migrations == nil {
		cfg.Migrations = &MigrationsConfig{}
	}
	if strings.TrimSpace(cfg.Migrations.Dir) == "" {
		cfg.Migrations.Dir = defaultMigrationsDir
	}
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

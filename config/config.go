package config

import (
	"os"
	"path/filepath"
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
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultSessionCookie      = "token"
	defaultRealtimePath       = "/ws"
	defaultMetricsPath        = "/metrics"

	// legacySecretEnv is the variable name older deployments use for the session secret.
	legacySecretEnv = "JWT_SECRET"
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
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Realtime configures the websocket channel used for presence and message push.
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI              string        `json:"uri" yaml:"uri"`
	Database         string        `json:"database" yaml:"database"`
	AppName          string        `json:"appName" yaml:"appName"`
	MinPoolSize      uint64        `json:"minPoolSize" yaml:"minPoolSize"`
	MaxPoolSize      uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
	ConnectTimeout   time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
	// UseTransactions requires a replica set. Standalone servers run multi-document writes without a session.
	UseTransactions bool `json:"useTransactions" yaml:"useTransactions"`
}

// SessionConfig defines how session tokens are issued and carried in cookies.
type SessionConfig struct {
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	Secure     bool          `json:"secure" yaml:"secure"`
	SameSite   string        `json:"sameSite" yaml:"sameSite"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// RealtimeConfig defines websocket session limits.
type RealtimeConfig struct {
	Path           string        `json:"path" yaml:"path"`
	AllowedOrigins []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
	WriteWait      time.Duration `json:"writeWait" yaml:"writeWait"`
	PongWait       time.Duration `json:"pongWait" yaml:"pongWait"`
	PingPeriod     time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
	MaxMessageSize int64         `json:"maxMessageSize" yaml:"maxMessageSize"`
	SendBuffer     int           `json:"sendBuffer" yaml:"sendBuffer"`
}

// RateLimitConfig defines per-user token buckets. Rates are events per second.
type RateLimitConfig struct {
	MessageRate     float64       `json:"messageRate" yaml:"messageRate"`
	MessageBurst    int           `json:"messageBurst" yaml:"messageBurst"`
	EventRate       float64       `json:"eventRate" yaml:"eventRate"`
	EventBurst      int           `json:"eventBurst" yaml:"eventBurst"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findFile(searchPaths, currEnv+".yaml")
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// MONGO_USETRANSACTIONS -> mongo.useTransactions, matching the casing already in the YAML.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

// New loads config.yaml, applying .env and process environment overrides.
func New() (*Config, error) {
	if err := loadDotEnv(".env", "../.env", "../../.env"); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.SecretKey.Session == "" {
		cfg.SecretKey.Session = os.Getenv(legacySecretEnv)
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every zero-valued setting the service cannot run without.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "devconnects"
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = 10 * time.Second
	}
	if cfg.Mongo.OperationTimeout <= 0 {
		cfg.Mongo.OperationTimeout = 5 * time.Second
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookie
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	if cfg.Realtime.Path == "" {
		cfg.Realtime.Path = defaultRealtimePath
	}
	if cfg.Realtime.WriteWait <= 0 {
		cfg.Realtime.WriteWait = 10 * time.Second
	}
	if cfg.Realtime.PongWait <= 0 {
		cfg.Realtime.PongWait = 60 * time.Second
	}
	if cfg.Realtime.PingPeriod <= 0 || cfg.Realtime.PingPeriod >= cfg.Realtime.PongWait {
		cfg.Realtime.PingPeriod = cfg.Realtime.PongWait * 9 / 10
	}
	if cfg.Realtime.MaxMessageSize <= 0 {
		cfg.Realtime.MaxMessageSize = 64 * 1024
	}
	if cfg.Realtime.SendBuffer <= 0 {
		cfg.Realtime.SendBuffer = 64
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.MessageRate <= 0 {
		cfg.RateLimit.MessageRate = 1
	}
	if cfg.RateLimit.MessageBurst <= 0 {
		cfg.RateLimit.MessageBurst = 20
	}
	if cfg.RateLimit.EventRate <= 0 {
		cfg.RateLimit.EventRate = 10
	}
	if cfg.RateLimit.EventBurst <= 0 {
		cfg.RateLimit.EventBurst = 50
	}
	if cfg.RateLimit.CleanupInterval <= 0 {
		cfg.RateLimit.CleanupInterval = 5 * time.Minute
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// loadDotEnv loads the first .env file found. Variables already set in the process win.
func loadDotEnv(candidates ...string) error {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}

		return errors.Wrapf(godotenv.Load(candidate), "load %s", candidate)
	}

	return nil
}

func findFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
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

// Package config loads the application configuration from yaml files with
// environment variable overlays.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// HTTP configures the local status surface.
	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Socket configures the real-time notification channel.
	Socket *SocketConfig `json:"socket" yaml:"socket"`

	// Presenter configures the serial toast presentation loop.
	Presenter *PresenterConfig `json:"presenter" yaml:"presenter"`

	// API configures the REST notification feed client.
	API *APIConfig `json:"api" yaml:"api"`

	// Keyring configures secure credential storage.
	Keyring *KeyringConfig `json:"keyring" yaml:"keyring"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SocketConfig defines the websocket transport configuration
type SocketConfig struct {
	// Websocket endpoint, e.g. wss://api.example.com/ws
	URL string `json:"url" yaml:"url"`

	// Maximum automatic reconnection attempts before giving up
	ReconnectAttempts int `json:"reconnectAttempts" yaml:"reconnectAttempts"`

	// Initial reconnection delay; doubles on every failed attempt
	ReconnectDelay time.Duration `json:"reconnectDelay" yaml:"reconnectDelay"`

	HandshakeTimeout time.Duration `json:"handshakeTimeout" yaml:"handshakeTimeout"`
	WriteTimeout     time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	PingInterval     time.Duration `json:"pingInterval" yaml:"pingInterval"`
}

// PresenterConfig defines the notification presentation configuration
type PresenterConfig struct {
	// How long a toast stays visible before auto-dismissal
	DwellTime time.Duration `json:"dwellTime" yaml:"dwellTime"`

	// Drop frames whose event id was already seen this session
	Dedupe bool `json:"dedupe" yaml:"dedupe"`
}

// APIConfig defines the REST notification API configuration
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// KeyringConfig defines secure credential storage configuration
type KeyringConfig struct {
	ServiceName string `json:"serviceName" yaml:"serviceName"`

	// Directory for the file backend fallback
	FileDir string `json:"fileDir" yaml:"fileDir"`
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
			// Example: SOCKET_RECONNECTDELAY -> socket.reconnectDelay
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

	return cfg, nil
}

// applyDefaults fills the behavioral defaults of the delivery pipeline.
func applyDefaults(cfg *Config) {
	if cfg.Socket == nil {
		cfg.Socket = &SocketConfig{}
	}
	if cfg.Socket.ReconnectAttempts == 0 {
		cfg.Socket.ReconnectAttempts = 5
	}
	if cfg.Socket.ReconnectDelay == 0 {
		cfg.Socket.ReconnectDelay = time.Second
	}
	if cfg.Socket.HandshakeTimeout == 0 {
		cfg.Socket.HandshakeTimeout = 10 * time.Second
	}
	if cfg.Socket.WriteTimeout == 0 {
		cfg.Socket.WriteTimeout = 5 * time.Second
	}
	if cfg.Socket.PingInterval == 0 {
		cfg.Socket.PingInterval = 30 * time.Second
	}

	if cfg.Presenter == nil {
		cfg.Presenter = &PresenterConfig{}
	}
	if cfg.Presenter.DwellTime == 0 {
		cfg.Presenter.DwellTime = 3500 * time.Millisecond
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}

	if cfg.Keyring == nil {
		cfg.Keyring = &KeyringConfig{}
	}
	if cfg.Keyring.ServiceName == "" {
		cfg.Keyring.ServiceName = "beacon"
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

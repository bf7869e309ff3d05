// Package config loads service configuration from YAML files with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultTokenPrefixLength = 12
	minTokenPrefixLength     = 4
	maxTokenPrefixLength     = 32
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

	// Firebase holds the upstream push-gateway credentials. The gateway is
	// injected configuration; nothing in the service hard-codes an endpoint.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Registry configures the in-memory device registry.
	Registry RegistryConfig `json:"registry" yaml:"registry"`

	// Welcome configures the post-registration welcome notification hook.
	Welcome *WelcomeConfig `json:"welcome" yaml:"welcome"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the FCM gateway credential source.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RegistryConfig defines device-registry behaviour.
type RegistryConfig struct {
	// TokenPrefixLength is how many leading characters of a delivery token
	// listing endpoints may expose. Clamped to [4, 32].
	TokenPrefixLength int `json:"tokenPrefixLength" yaml:"tokenPrefixLength"`

	// EvictInvalidAfter enables pruning of records that stayed invalid for
	// longer than this duration. Zero keeps invalid records forever.
	EvictInvalidAfter time.Duration `json:"evictInvalidAfter" yaml:"evictInvalidAfter"`
}

// WelcomeConfig defines the welcome notification sent after registration.
type WelcomeConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Title   string `json:"title" yaml:"title"`
	Body    string `json:"body" yaml:"body"`
}

// LoadWithEnv loads <env>.yaml through koanf and layers environment
// variables on top. Env keys map onto config paths by lowercasing and
// replacing underscores, e.g. REGISTRY_TOKENPREFIXLENGTH.
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching so env var overrides land on
				// camelCase YAML keys.
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

	cfg.Registry = cfg.Registry.withDefaults()
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = "1M"
	}

	return cfg, nil
}

func (c RegistryConfig) withDefaults() RegistryConfig {
	switch {
	case c.TokenPrefixLength == 0:
		c.TokenPrefixLength = defaultTokenPrefixLength
	case c.TokenPrefixLength < minTokenPrefixLength:
		c.TokenPrefixLength = minTokenPrefixLength
	case c.TokenPrefixLength > maxTokenPrefixLength:
		c.TokenPrefixLength = maxTokenPrefixLength
	}

	return c
}

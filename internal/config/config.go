package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/harou24/nano-banana-cli/internal/providers"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	APIKeyEnv     = "GOOGLE_AI_STUDIO_API_KEY"
	DefaultOutput = "output.png"
	appName       = "nano-banana"
)

type Config struct {
	// APIKey is only read from the config file; the environment variable is
	// consulted separately so the credential chain can tell them apart.
	APIKey string `toml:"api_key" yaml:"api_key"`

	Model      string        `toml:"model" yaml:"model" env:"NANO_BANANA_MODEL"`
	Output     string        `toml:"output" yaml:"output" env:"NANO_BANANA_OUTPUT"`
	TextModel  string        `toml:"text_model" yaml:"text_model" env:"NANO_BANANA_TEXT_MODEL"`
	BaseURL    string        `toml:"base_url" yaml:"base_url" env:"NANO_BANANA_BASE_URL"`
	APIVersion string        `toml:"api_version" yaml:"api_version" env:"NANO_BANANA_API_VERSION"`
	Timeout    time.Duration `toml:"timeout" yaml:"timeout" env:"NANO_BANANA_TIMEOUT"`
	Debug      bool          `toml:"debug" yaml:"debug" env:"NANO_BANANA_DEBUG"`

	SecretsTool string `toml:"secrets_tool" yaml:"secrets_tool" env:"NANO_BANANA_SECRETS_TOOL"`
	SecretName  string `toml:"secret_name" yaml:"secret_name" env:"NANO_BANANA_SECRET_NAME"`

	// Path is the config file that was read, empty if none.
	Path string `toml:"-" yaml:"-"`
}

// Defaults returns the built-in configuration. The file, .env and the
// environment override it in that order.
func Defaults() *Config {
	return &Config{
		Model:       string(providers.DefaultImageModel),
		Output:      DefaultOutput,
		TextModel:   providers.DefaultTextModel,
		BaseURL:     "https://generativelanguage.googleapis.com",
		APIVersion:  "v1beta",
		SecretsTool: "doppler",
		SecretName:  APIKeyEnv,
	}
}

// Load builds the configuration. A missing file at the default location is
// ignored; a missing file passed explicitly is an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	cfg.Model = strings.ToLower(strings.TrimSpace(cfg.Model))
	cfg.Output = strings.TrimSpace(cfg.Output)
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("parsing config %s: unknown key %q", path, undecoded[0].String())
		}
	}

	c.Path = path
	return nil
}

func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", appName)
	}
	return filepath.Join(home, ".config", appName)
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

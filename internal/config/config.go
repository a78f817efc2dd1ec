package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`

	Generation GenerationConfig `yaml:"generation"`
	Jokes      JokesConfig      `yaml:"jokes"`
	Speech     SpeechConfig     `yaml:"speech"`

	Debug bool `yaml:"debug,omitempty"`
}

type GenerationConfig struct {
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
	NumPredict  int     `yaml:"num_predict"`
	TimeoutSecs int     `yaml:"timeout_seconds"`
}

type JokesConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

type SpeechConfig struct {
	TTSEnabled      bool              `yaml:"tts_enabled"`
	Voices          map[string]string `yaml:"voices,omitempty"`
	WhisperEndpoint string            `yaml:"whisper_endpoint,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Host:  "http://localhost:11434",
		Model: "llama3.2",
		Generation: GenerationConfig{
			Temperature: 0.9,
			TopP:        0.95,
			NumPredict:  1024,
			TimeoutSecs: 60,
		},
		Jokes: JokesConfig{
			Min:     1,
			Max:     10,
			Default: 3,
		},
		Speech: SpeechConfig{
			TTSEnabled: true,
		},
	}
}

func (c *Config) Timeout() time.Duration {
	if c.Generation.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.Generation.TimeoutSecs) * time.Second
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quip"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file and overlays the environment on top. A missing
// file is not an error: the defaults are used, with the environment still
// applied, so QUIP_OLLAMA_HOST works on a fresh install.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// applyEnv overlays environment variables on the loaded config. A .env file
// in the working directory is read first so local overrides work without
// touching the shell profile.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if host := os.Getenv("QUIP_OLLAMA_HOST"); host != "" {
		c.Host = host
	}
	if model := os.Getenv("QUIP_MODEL"); model != "" {
		c.Model = model
	}
	if os.Getenv("QUIP_DEBUG") == "1" {
		c.Debug = true
	}
}

// Package config loads dtminfo settings from defaults, an optional YAML file,
// an optional .env file and the process environment, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel     = "DTMINFO_LOG_LEVEL"
	EnvOutput       = "DTMINFO_OUTPUT"
	EnvAddr         = "DTMINFO_ADDR"
	EnvPprof        = "DTMINFO_PPROF"
	EnvMaxBodyBytes = "DTMINFO_MAX_BODY_BYTES"
)

// Config holds the settings shared by the CLI and the HTTP service.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Output   string       `yaml:"output"`
	Server   ServerConfig `yaml:"server"`
}

// ServerConfig defines the HTTP inspection service.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	Pprof        bool   `yaml:"pprof"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"` // upload limit for a single movie file
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load builds the configuration. path and envFile may be empty; a missing
// envFile is not an error.
func Load(path, envFile string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err = decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		var err error
		if dotenv, err = godotenv.Read(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read env file: %w", err)
			}
			dotenv = map[string]string{}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvOutput); ok {
		c.Output = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPprof); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPprof, err)
		}
		c.Server.Pprof = b
	}
	if v, ok := lookup(EnvMaxBodyBytes); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBodyBytes, err)
		}
		c.Server.MaxBodyBytes = n
	}
	return nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "warning"
	}
	if c.Output == "" {
		c.Output = "text"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "0.0.0.0:8080"
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
}

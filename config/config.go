package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the dispatch chain: where the
// error-log file lives and where warnings are emitted. Handler order is
// fixed and deliberately not configurable.
type Config struct {
	ErrorLog    string `toml:"error_log" yaml:"error_log"`
	Diagnostics string `toml:"diagnostics" yaml:"diagnostics"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		ErrorLog:    "error.txt",
		Diagnostics: "stderr",
	}
}

// Load reads a config file by extension (.toml, .yaml, .yml), fills in
// defaults for unset fields and validates the result.
func Load(path string) (Config, error) {
	cfg := Config{}
	if err := decodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.ErrorLog == "" {
		cfg.ErrorLog = def.ErrorLog
	}
	if cfg.Diagnostics == "" {
		cfg.Diagnostics = def.Diagnostics
	}
}

func (c Config) validate() error {
	switch c.Diagnostics {
	case "stderr", "stdout", "discard":
		return nil
	default:
		return fmt.Errorf("unsupported diagnostics target %q (supported: stderr, stdout, discard)", c.Diagnostics)
	}
}

// DiagnosticsWriter returns the writer named by the Diagnostics field.
func (c Config) DiagnosticsWriter() io.Writer {
	switch c.Diagnostics {
	case "stdout":
		return os.Stdout
	case "discard":
		return io.Discard
	default:
		return os.Stderr
	}
}

func decodeFile(path string, v any) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "", ".toml":
		_, err := toml.DecodeFile(path, v)
		return err
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra YAML document")
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported config file type %q (supported: .toml, .yaml, .yml)", ext)
	}
}

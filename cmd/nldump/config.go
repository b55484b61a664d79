package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"nldump/internal/capture"
	"nldump/internal/script"
)

type Config struct {
	Source capture.Config `yaml:"source"`
	Decode struct {
		Verbose       bool          `yaml:"verbose"`
		Print         bool          `yaml:"print"`
		ScriptTimeout time.Duration `yaml:"script_timeout"`
	} `yaml:"decode"`
	// FamilyIDs pins message types of families, for decoding dumps taken
	// on another machine.
	FamilyIDs  map[string]uint16 `yaml:"family_ids"`
	SchemaDir  string            `yaml:"schema_dir"`
	ScriptsDir string            `yaml:"scripts_dir"`
	Store      struct {
		Path        string `yaml:"path"`
		MaxCaptures int    `yaml:"max_captures"`
	} `yaml:"store"`
	Web struct {
		// Listen is empty to disable the web server.
		Listen         string   `yaml:"listen"`
		APIKey         string   `yaml:"api_key"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"web"`
	MQTT struct {
		Enabled     bool   `yaml:"enabled"`
		Broker      string `yaml:"broker"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		TopicPrefix string `yaml:"topic_prefix"`
		ClientID    string `yaml:"client_id"`
	} `yaml:"mqtt"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func (c *Config) validate() error {
	switch c.Source.Type {
	case capture.TypeHexFile:
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for %s (use - for stdin)", c.Source.Type)
		}
	case capture.TypeSerial:
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for %s", c.Source.Type)
		}
	case capture.TypeNetlink:
		if len(c.Source.Families) == 0 {
			return fmt.Errorf("source.families must name at least one family")
		}
	default:
		return fmt.Errorf("source.type must be %s, %s or %s, got %q",
			capture.TypeHexFile, capture.TypeSerial, capture.TypeNetlink, c.Source.Type)
	}
	if c.Store.MaxCaptures < 0 {
		return fmt.Errorf("store.max_captures must not be negative")
	}
	if c.Decode.ScriptTimeout < 0 {
		return fmt.Errorf("decode.script_timeout must not be negative")
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt.broker is required when mqtt is enabled")
	}
	for name, id := range c.FamilyIDs {
		if id == 0 {
			return fmt.Errorf("family_ids.%s must not be 0", name)
		}
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	// Printing is on unless the file turns it off.
	cfg.Decode.Print = true
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Source.Type == "" {
		cfg.Source.Type = capture.TypeHexFile
	}
	if cfg.Source.Type == capture.TypeHexFile && cfg.Source.Path == "" {
		cfg.Source.Path = "-"
	}
	if cfg.Source.Baud == 0 {
		cfg.Source.Baud = 115200
	}
	if cfg.Decode.ScriptTimeout == 0 {
		cfg.Decode.ScriptTimeout = script.DefaultTimeout
	}
	if cfg.SchemaDir == "" {
		cfg.SchemaDir = "schema"
	}
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = "scripts"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "nldump.db"
	}
	if cfg.Store.MaxCaptures == 0 {
		cfg.Store.MaxCaptures = 10000
	}
	if cfg.MQTT.TopicPrefix == "" {
		cfg.MQTT.TopicPrefix = "nldump"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	return &cfg, nil
}

// newLogger writes to w; stdout is kept for the decoded messages.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

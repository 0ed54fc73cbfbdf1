// Package config loads the batch configuration document. The document is
// JSON by convention; it is decoded with a YAML parser so YAML files work too.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FileName = "config.json"
	// EnvPath overrides the location of the configuration document.
	EnvPath = "SHEETGEN_CONFIG"

	DefaultTableSettingPath = "../../tableManager"

	ReaderTealeg   = "tealeg"
	ReaderExcelize = "excelize"
)

var ErrConfigLoad = errors.New("config load failed")

type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

func (e *ConfigLoadError) Is(target error) bool {
	return target == ErrConfigLoad
}

type Config struct {
	ExcelFolderPath  string `yaml:"excel_folder_path"`
	TableOutputPath  string `yaml:"out_put_table_path"`
	ExtendOutputPath string `yaml:"out_put_extends_path"`
	TableSettingPath string `yaml:"table_setting_path"`

	Reader          string `yaml:"reader"`
	LegacyJSONFixup bool   `yaml:"legacy_json_fixup"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	BundlePath string `yaml:"bundle_path"`
	BundleGzip bool   `yaml:"bundle_gzip"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	RedisKey      string `yaml:"redis_key"`

	MongoURI        string `yaml:"mongo_uri"`
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`
}

// Path returns the configuration location for the current process.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return FileName
}

// Load reads and validates the document at path. Every failure is a
// *ConfigLoadError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TableSettingPath == "" {
		c.TableSettingPath = DefaultTableSettingPath
	}
	if c.Reader == "" {
		c.Reader = ReaderTealeg
	}
	c.Reader = strings.ToLower(c.Reader)
	if c.RedisKey == "" {
		c.RedisKey = "table_data"
	}
	if c.MongoCollection == "" {
		c.MongoCollection = "tables"
	}
}

func (c *Config) Validate() error {
	missing := make([]string, 0)
	if c.ExcelFolderPath == "" {
		missing = append(missing, "excel_folder_path")
	}
	if c.TableOutputPath == "" {
		missing = append(missing, "out_put_table_path")
	}
	if c.ExtendOutputPath == "" {
		missing = append(missing, "out_put_extends_path")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}
	switch c.Reader {
	case ReaderTealeg, ReaderExcelize:
	default:
		return fmt.Errorf("unknown reader %q", c.Reader)
	}
	if c.MongoURI != "" && c.MongoDatabase == "" {
		return errors.New("mongo_database is required with mongo_uri")
	}
	return nil
}

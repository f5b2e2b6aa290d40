// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the fop command configuration.
//
// Values are resolved in order: built-in defaults, then the YAML file given
// with --config, then FOP_* environment variables. Command-line flags are
// applied last by the command itself.
//
// Example fop.yaml:
//
//	log:
//	  level: debug
//	  format: json
//	compare:
//	  num_options: 1000000
//	  precision: 32
//	  tolerance: 1e-4
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full fop configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Compare CompareConfig `yaml:"compare"`
}

// LogConfig mirrors logging.Options.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	FilePath   string `yaml:"file_path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// CompareConfig drives `fop compare`.
type CompareConfig struct {
	NumOptions int     `yaml:"num_options"`
	Seed       uint64  `yaml:"seed"`
	Precision  int     `yaml:"precision"`
	Workers    int     `yaml:"workers"` // 0 means GOMAXPROCS
	Tolerance  float64 `yaml:"tolerance"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			FilePath:   "logs/fop.log",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Compare: CompareConfig{
			NumOptions: 100_000,
			Seed:       1,
			Precision:  64,
			Tolerance:  1e-5,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any FOP_* variables that are set.
// Unparsable numbers are ignored.
func (c *Config) ApplyEnv() {
	c.Log.Level = getEnv("FOP_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("FOP_LOG_FORMAT", c.Log.Format)
	c.Log.Output = getEnv("FOP_LOG_OUTPUT", c.Log.Output)
	c.Log.FilePath = getEnv("FOP_LOG_FILE", c.Log.FilePath)

	c.Compare.NumOptions = getEnvInt("FOP_COMPARE_NUM_OPTIONS", c.Compare.NumOptions)
	c.Compare.Seed = getEnvUint("FOP_COMPARE_SEED", c.Compare.Seed)
	c.Compare.Precision = getEnvInt("FOP_COMPARE_PRECISION", c.Compare.Precision)
	c.Compare.Workers = getEnvInt("FOP_COMPARE_WORKERS", c.Compare.Workers)
	c.Compare.Tolerance = getEnvFloat("FOP_COMPARE_TOLERANCE", c.Compare.Tolerance)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	switch strings.ToLower(c.Log.Output) {
	case "stderr":
	case "file", "both":
		if c.Log.FilePath == "" {
			errs = append(errs, fmt.Errorf("log.file_path is required for output %q", c.Log.Output))
		}
	default:
		errs = append(errs, fmt.Errorf("log.output must be stderr, file or both, got %q", c.Log.Output))
	}
	if c.Compare.NumOptions <= 0 {
		errs = append(errs, fmt.Errorf("compare.num_options must be positive, got %d", c.Compare.NumOptions))
	}
	if c.Compare.Precision != 32 && c.Compare.Precision != 64 {
		errs = append(errs, fmt.Errorf("compare.precision must be 32 or 64, got %d", c.Compare.Precision))
	}
	if c.Compare.Workers < 0 {
		errs = append(errs, fmt.Errorf("compare.workers must not be negative, got %d", c.Compare.Workers))
	}
	if !(c.Compare.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("compare.tolerance must be positive, got %v", c.Compare.Tolerance))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

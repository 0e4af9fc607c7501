// Package config loads CLI settings from an HCL file and NVISY_*
// environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
)

const (
	// EnvPrefix marks environment variables read by Load.
	EnvPrefix = "NVISY_"

	// EnvConfigPath names the config file when no path is given.
	EnvConfigPath = "NVISY_CONFIG"

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config is the CLI configuration. Environment variables override values
// from the file; command-line flags override both.
//
// Example:
//
//	api_key   = "nv_live_..."
//	base_url  = "https://api.nvisy.com"
//	timeout   = "30s"
//	log_level = "warn"
//	output    = "table"
type Config struct {
	APIKey   string `hcl:"api_key,optional" mapstructure:"NVISY_API_KEY" json:"api_key"`
	BaseURL  string `hcl:"base_url,optional" mapstructure:"NVISY_BASE_URL" json:"base_url"`
	Timeout  string `hcl:"timeout,optional" mapstructure:"NVISY_TIMEOUT" json:"timeout"`
	LogLevel string `hcl:"log_level,optional" mapstructure:"NVISY_LOG_LEVEL" json:"log_level"`
	Output   string `hcl:"output,optional" mapstructure:"NVISY_OUTPUT" json:"output"`
}

// Load reads the config file at path from fs, if any, then applies the
// NVISY_* entries of environ (in os.Environ form). An empty path falls back
// to NVISY_CONFIG; with neither set only the environment is used.
func Load(fs afero.Fs, path string, environ []string) (*Config, error) {
	env := parseEnviron(environ)
	if path == "" {
		path = env[EnvConfigPath]
	}

	cfg := &Config{}
	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := hclsimple.Decode(hclFilename(path), src, nil, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	overlay := make(map[string]any, len(env))
	for k, v := range env {
		if k != EnvConfigPath {
			overlay[k] = v
		}
	}
	if err := mapstructure.Decode(overlay, cfg); err != nil {
		return nil, fmt.Errorf("error decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that have a fixed vocabulary.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.By(duration)),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
		validation.Field(&c.Output, validation.In(OutputTable, OutputJSON, OutputYAML)),
	)
}

// TimeoutDuration returns the parsed timeout, or zero when unset. Bare
// integers are read as seconds.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(c.Timeout); err == nil {
		return d, nil
	}
	var secs int
	if _, err := fmt.Sscanf(c.Timeout, "%d", &secs); err == nil && fmt.Sprint(secs) == c.Timeout {
		return time.Duration(secs) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration %q", c.Timeout)
}

func duration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := (&Config{Timeout: s}).TimeoutDuration()
	return err
}

// parseEnviron keeps the NVISY_* entries of environ.
func parseEnviron(environ []string) map[string]string {
	env := make(map[string]string)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) || v == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// hclFilename makes hclsimple treat files without a .json extension as
// native HCL syntax.
func hclFilename(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return path
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return path
	}
	return path + ".hcl"
}

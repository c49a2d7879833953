package config

//go:generate go run ../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/castkit/shownotes/internal/brand"
	"github.com/castkit/shownotes/internal/seo"
)

// EnvConfigPath is the environment variable naming the config file. It is
// typically set through a .env file.
const EnvConfigPath = "SHOWNOTES_CONFIG"

// Config is the top-level configuration for shownotes. Everything the
// original tool hardcoded — keyword tables, acronyms, platform links — lives
// here as data so it can be swapped per brand without code changes.
type Config struct {
	// DefaultBrand is used when --brand is not given.
	DefaultBrand string `yaml:"default_brand,omitempty"`

	// OutputDir is where computed output paths land. Defaults to ".".
	OutputDir string `yaml:"output_dir,omitempty"`

	// Brands maps brand identifiers to show identities.
	Brands map[string]brand.Brand `yaml:"brands,omitempty"`

	// Acronyms are restored to uppercase by sentence casing.
	Acronyms []string `yaml:"acronyms,omitempty"`

	// SEO holds the candidate-keyword tables for tag synthesis.
	SEO seo.Tables `yaml:"seo,omitempty"`
}

// AcronymTable returns the lowercase→canonical lookup used by the text
// normalizers.
func (c *Config) AcronymTable() map[string]string {
	table := make(map[string]string, len(c.Acronyms))
	for _, a := range c.Acronyms {
		table[strings.ToLower(a)] = a
	}
	return table
}

// Brand resolves a brand identifier. An empty id falls back to DefaultBrand.
// An unknown id is a fatal user error surfaced before generation starts.
func (c *Config) Brand(id string) (brand.Brand, error) {
	if id == "" {
		id = c.DefaultBrand
	}
	if id == "" {
		return brand.Brand{}, nil
	}
	b, ok := c.Brands[id]
	if !ok {
		return brand.Brand{}, fmt.Errorf("brand %q not found in configuration", id)
	}
	return b, nil
}

// Load reads configuration from path. When path is empty it falls back to
// $SHOWNOTES_CONFIG, then to ~/.config/shownotes/config.yml, and finally to
// the built-in defaults when no file exists at the fallback locations.
// An explicitly named file that cannot be read is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "shownotes", "config.yml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return parse(data)
		}
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return Default(), nil
}

func parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

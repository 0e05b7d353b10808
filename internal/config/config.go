package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/hiveschema/internal/errors"
)

// DefaultTableName is used when no table name is given anywhere.
const DefaultTableName = "x"

// Null handling modes.
const (
	NullModeFail        = "fail"
	NullModePlaceholder = "placeholder"
)

// Config represents the complete configuration for hiveschema
type Config struct {
	TableName         string      `yaml:"table_name"`
	TableNameFromFile bool        `yaml:"table_name_from_file"`
	Nulls             NullsConfig `yaml:"nulls"`
	Dev               DevConfig   `yaml:"dev"`
}

// NullsConfig controls how JSON null values are typed.
// In fail mode a null is an error; in placeholder mode it is typed as Placeholder.
type NullsConfig struct {
	Mode        string `yaml:"mode"`
	Placeholder string `yaml:"placeholder"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		TableName:         DefaultTableName,
		TableNameFromFile: false,
		Nulls: NullsConfig{
			Mode:        NullModeFail,
			Placeholder: "string",
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".hiveschema.yml", ".hiveschema.yaml", "hiveschema.yml", "hiveschema.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks the null handling settings.
func (c *Config) Validate() error {
	switch c.Nulls.Mode {
	case NullModeFail:
	case NullModePlaceholder:
		if strings.TrimSpace(c.Nulls.Placeholder) == "" {
			return errors.NewConfigError("nulls.placeholder must be set when nulls.mode is 'placeholder'", errors.ErrInvalidConfig)
		}
	default:
		return errors.NewConfigError(
			fmt.Sprintf("unknown nulls.mode '%s' (want '%s' or '%s')", c.Nulls.Mode, NullModeFail, NullModePlaceholder),
			errors.ErrInvalidConfig,
		)
	}
	return nil
}

// NullType returns the type emitted for null values, or "" when nulls are an error.
func (c *Config) NullType() string {
	if c.Nulls.Mode == NullModePlaceholder {
		return strings.TrimSpace(c.Nulls.Placeholder)
	}
	return ""
}

// ResolveTableName picks the table name: an explicit name wins, then a name
// derived from the input file when enabled, then the configured name.
func (c *Config) ResolveTableName(explicit, inputPath string) string {
	if explicit != "" {
		return explicit
	}
	if c.TableNameFromFile && inputPath != "" && inputPath != "-" {
		base := filepath.Base(inputPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if name := strcase.ToSnake(stem); name != "" {
			return name
		}
	}
	if c.TableName != "" {
		return c.TableName
	}
	return DefaultTableName
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// A non-empty cliNullType switches null handling to placeholder mode.
func LoadConfigWithCLI(configPath, cliNullType string, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliNullType != "" {
		cfg.Nulls.Mode = NullModePlaceholder
		cfg.Nulls.Placeholder = cliNullType
	}
	if cliDebug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

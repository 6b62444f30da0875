package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	General  GeneralConfig  `mapstructure:"general"`
	UI       UIConfig       `mapstructure:"ui"`
	Data     DataConfig     `mapstructure:"data"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type GeneralConfig struct {
	WorkspacePath string `mapstructure:"workspace_path"`
	DefaultTable  string `mapstructure:"default_table"`
	SeedDemoData  bool   `mapstructure:"seed_demo_data"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
}

type DataConfig struct {
	RowLimit             int `mapstructure:"row_limit"`
	MaxCellDisplayLength int `mapstructure:"max_cell_display_length"`
}

// PostgresConfig enables the optional external table source. The password
// is kept in the OS keyring, never in the config file.
type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	SSLMode  string `mapstructure:"ssl_mode"`
	Schema   string `mapstructure:"schema"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			WorkspacePath: "",
			DefaultTable:  "",
			SeedDemoData:  true,
		},
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
		},
		Data: DataConfig{
			RowLimit:             500,
			MaxCellDisplayLength: 100,
		},
		Postgres: PostgresConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    5432,
			SSLMode: "prefer",
			Schema:  "public",
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "lazygrid"))
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "lazygrid"))
	}

	defaults := GetDefaults()
	v.SetDefault("general.workspace_path", defaults.General.WorkspacePath)
	v.SetDefault("general.default_table", defaults.General.DefaultTable)
	v.SetDefault("general.seed_demo_data", defaults.General.SeedDemoData)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.mouse_enabled", defaults.UI.MouseEnabled)
	v.SetDefault("data.row_limit", defaults.Data.RowLimit)
	v.SetDefault("data.max_cell_display_length", defaults.Data.MaxCellDisplayLength)
	v.SetDefault("postgres.enabled", defaults.Postgres.Enabled)
	v.SetDefault("postgres.host", defaults.Postgres.Host)
	v.SetDefault("postgres.port", defaults.Postgres.Port)
	v.SetDefault("postgres.ssl_mode", defaults.Postgres.SSLMode)
	v.SetDefault("postgres.schema", defaults.Postgres.Schema)

	if err := v.ReadInConfig(); err != nil {
		// Missing config files are fine; defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// WorkspacePath resolves the workspace database location, defaulting to
// the user config directory
func (c *Config) WorkspacePath() (string, error) {
	if c.General.WorkspacePath != "" {
		return c.General.WorkspacePath, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	dir := filepath.Join(configDir, "lazygrid")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	return filepath.Join(dir, "workspace.db"), nil
}

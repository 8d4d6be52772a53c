package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Client   ClientConfig   `toml:"client"`
	Roster   RosterConfig   `toml:"roster"`
	Output   OutputConfig   `toml:"output"`
	SFTP     SFTPConfig     `toml:"sftp"`
	Database DatabaseConfig `toml:"database"`
}

// ClientConfig fills the metadata rows at the top of the WBS workbook.
type ClientConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type RosterConfig struct {
	// Source is "csv" or "postgres".
	Source     string `toml:"source"`
	OrderPath  string `toml:"order_path"`
	RosterPath string `toml:"roster_path"`
}

type OutputConfig struct {
	// IncludeFullRoster emits zero rows for roster employees missing from
	// the week's input.
	IncludeFullRoster bool `toml:"include_full_roster"`
}

type SFTPConfig struct {
	Server         string `toml:"server"`
	Username       string `toml:"username"`
	PrivateKeyPath string `toml:"private_key_path"`
	RemoteDir      string `toml:"remote_dir"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (c SFTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	DSN string `toml:"dsn"`
}

func Default() Config {
	return Config{
		Client: ClientConfig{
			ID:   "055269",
			Name: "Sierra Roofing and Solar Inc",
		},
		Roster: RosterConfig{
			Source:     "csv",
			OrderPath:  "data/gold_master_order.txt",
			RosterPath: "data/gold_master_roster.csv",
		},
		SFTP: SFTPConfig{
			TimeoutSeconds: 30,
		},
	}
}

// Load reads the toml config at path, falling back to defaults when the file
// does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if server := os.Getenv("SIERRA_SFTP_SERVER"); server != "" {
		cfg.SFTP.Server = server
	}
	if user := os.Getenv("SIERRA_SFTP_USERNAME"); user != "" {
		cfg.SFTP.Username = user
	}
}

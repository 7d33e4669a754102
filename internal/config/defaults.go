package config

import (
	"github.com/rickgao/sleeper-roster/internal/api"
	"github.com/rickgao/sleeper-roster/internal/report"
)

// Default values for optional configuration fields.
const (
	DefaultOwnerID     = "470333759997079552"
	DefaultOutput      = "/var/home/mjblue/Documents/Sleeper Py/player_roster_info.csv"
	DefaultBaseURL     = api.DefaultBaseURL
	DefaultSport       = api.DefaultSport
	DefaultAPITimeout  = api.DefaultTimeout
	DefaultUserAgent   = api.DefaultUserAgent
	DefaultPreviewRows = report.DefaultPreviewRows
	DefaultLogLevel    = "info"
	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 0
)

// DefaultLeagues are the leagues reported on when none are configured.
var DefaultLeagues = []string{
	"1258502970421563392",
	"1252826095145713664",
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.OwnerID == "" {
		c.OwnerID = DefaultOwnerID
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if len(c.Leagues) == 0 {
		c.Leagues = append([]string(nil), DefaultLeagues...)
	}

	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Sport == "" {
		c.API.Sport = DefaultSport
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = DefaultUserAgent
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	applyDBDefaults(&c.Archive.Database)
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}

package config

import "time"

// Config is the root configuration for a report run.
type Config struct {
	OwnerID string        `yaml:"owner_id"`
	Output  string        `yaml:"output"`
	Leagues []string      `yaml:"leagues"`
	API     APIConfig     `yaml:"api"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
	Archive ArchiveConfig `yaml:"archive"`
}

// APIConfig holds Sleeper API settings.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Sport     string        `yaml:"sport"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// ReportConfig holds console output settings.
type ReportConfig struct {
	// PreviewRows is a pointer so an explicit 0 disables the preview.
	PreviewRows *int `yaml:"preview_rows"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ArchiveConfig enables storing each run in PostgreSQL.
type ArchiveConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Database DBConfig `yaml:"database"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// Previews returns the configured preview row count.
func (r ReportConfig) Previews() int {
	if r.PreviewRows == nil {
		return DefaultPreviewRows
	}
	return *r.PreviewRows
}

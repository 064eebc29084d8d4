package config

import "time"

// Config holds server configuration values.
type Config struct {
	// Addr is the TCP game listener address. The CLI's positional port
	// argument overrides the port part.
	Addr string `mapstructure:"addr" yaml:"addr"`
	// StatusAddr is the operator status HTTP listener address. Empty
	// disables the status server.
	StatusAddr string `mapstructure:"status_addr" yaml:"status_addr"`
	// ReadTimeout bounds every blocking receive from a player; exceeding
	// it marks the player idle, exactly like a disconnect.
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	// WriteTimeout bounds every send to a player.
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// BroadcastPacing is the deliberate delay before each broadcast batch
	// so human players can read the previous message.
	BroadcastPacing time.Duration `mapstructure:"broadcast_pacing" yaml:"broadcast_pacing"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// QuestionDB is the path to a SQLite content bank. Empty selects the
	// builtin phrase and question sets.
	QuestionDB string `mapstructure:"question_db" yaml:"question_db"`
	// ShutdownTimeout bounds the status server's graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:            ":7777",
		StatusAddr:      ":8080",
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    10 * time.Second,
		BroadcastPacing: 5 * time.Second,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.StatusAddr != "" {
		c.StatusAddr = other.StatusAddr
	}
	if other.ReadTimeout != 0 {
		c.ReadTimeout = other.ReadTimeout
	}
	if other.WriteTimeout != 0 {
		c.WriteTimeout = other.WriteTimeout
	}
	if other.BroadcastPacing != 0 {
		c.BroadcastPacing = other.BroadcastPacing
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.QuestionDB != "" {
		c.QuestionDB = other.QuestionDB
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
}

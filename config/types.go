// Package config loads library configuration from defaults, an optional
// YAML file, and environment variables, in increasing priority.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Log    LogConfig    `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`
	Client ClientConfig `koanf:"client" json:"client" yaml:"client" mapstructure:"client"`
	Auth   AuthConfig   `koanf:"auth" json:"auth" yaml:"auth" mapstructure:"auth"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level" mapstructure:"level"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty" mapstructure:"pretty"`
}

// ClientConfig holds network service settings.
type ClientConfig struct {
	Timeout time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout" mapstructure:"timeout"`
	Bearer  BearerConfig  `koanf:"bearer" json:"bearer" yaml:"bearer" mapstructure:"bearer"`
	Payload PayloadConfig `koanf:"payload" json:"payload" yaml:"payload" mapstructure:"payload"`
	Trace   TraceConfig   `koanf:"trace" json:"trace" yaml:"trace" mapstructure:"trace"`
}

// BearerConfig holds credential injection settings.
type BearerConfig struct {
	Scheme string `koanf:"scheme" json:"scheme" yaml:"scheme" mapstructure:"scheme"`
}

// PayloadConfig holds payload logging settings.
type PayloadConfig struct {
	Log      bool `koanf:"log" json:"log" yaml:"log" mapstructure:"log"`
	MaxBytes int  `koanf:"maxbytes" json:"maxbytes" yaml:"maxbytes" mapstructure:"maxbytes"`
}

// TraceConfig holds trace propagation settings.
type TraceConfig struct {
	Headers bool `koanf:"headers" json:"headers" yaml:"headers" mapstructure:"headers"`
}

// AuthConfig holds credential settings.
type AuthConfig struct {
	Token   string        `koanf:"token" json:"token" yaml:"token" mapstructure:"token"`
	Refresh RefreshConfig `koanf:"refresh" json:"refresh" yaml:"refresh" mapstructure:"refresh"`
}

// RefreshConfig holds credential refresh settings.
type RefreshConfig struct {
	// Statuses lists the response status codes that trigger a credential
	// refresh (default: 401)
	Statuses []int `koanf:"statuses" json:"statuses" yaml:"statuses" mapstructure:"statuses"`
}

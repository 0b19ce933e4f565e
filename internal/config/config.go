package config

import (
	"errors"
	"time"
)

// Defaults applied to settings a file leaves out.
const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultGrace     = 5 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTheme     = "ltixml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the service configuration loaded from TOML.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
	Theme  Theme  `toml:"theme"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Addr  string   `toml:"addr" validate:"required,hostname_port"`
	Grace Duration `toml:"grace" validate:"gte=0"`
}

// Log holds the logging settings.
type Log struct {
	Level  string `toml:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

// Theme selects the page theme and variant.
type Theme struct {
	Name    string `toml:"name" validate:"required"`
	Variant string `toml:"variant"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{Addr: DefaultAddr, Grace: Duration(DefaultGrace)},
		Log:    Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Theme:  Theme{Name: DefaultTheme},
	}
}

// Duration is a time.Duration decoded from strings such as "5s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the value formatted by time.Duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText renders the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatHex  = "hex"
	FormatBin  = "bin"
	FormatOct  = "oct"
)

const (
	MinDisplayBits = 8
	MaxDisplayBits = 1 << 20
)

const (
	DefaultFormat         = FormatAuto
	DefaultAligned        = false
	DefaultMaxDisplayBits = 100
	DefaultLogLevel       = "info"
)

type Config struct {
	Format         string `mapstructure:"format"`
	Aligned        bool   `mapstructure:"aligned"`
	MaxDisplayBits uint64 `mapstructure:"max-display-bits"`
	LogLevel       string `mapstructure:"log-level"`
}

// Validate reports every invalid field at once.
func (cfg *Config) Validate() error {
	var result error

	switch cfg.Format {
	case FormatAuto, FormatHex, FormatBin, FormatOct:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid `Format`; expected: one of %q, given: %q",
			[]string{FormatAuto, FormatHex, FormatBin, FormatOct}, cfg.Format))
	}

	if cfg.MaxDisplayBits < MinDisplayBits {
		result = multierror.Append(result, fmt.Errorf("invalid `MaxDisplayBits`; expected: >= %d, given: %d", MinDisplayBits, cfg.MaxDisplayBits))
	}

	if cfg.MaxDisplayBits > MaxDisplayBits {
		result = multierror.Append(result, fmt.Errorf("invalid `MaxDisplayBits`; expected: <= %d, given: %d", MaxDisplayBits, cfg.MaxDisplayBits))
	}

	if _, err := cfg.Level(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid `LogLevel`; expected: a zap level, given: %q", cfg.LogLevel))
	}

	return result
}

// Level parses LogLevel.
func (cfg *Config) Level() (zapcore.Level, error) {
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(cfg.LogLevel))
	return lvl, err
}

func DefaultConfig() *Config {
	return &Config{
		Format:         DefaultFormat,
		Aligned:        DefaultAligned,
		MaxDisplayBits: DefaultMaxDisplayBits,
		LogLevel:       DefaultLogLevel,
	}
}

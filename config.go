package dropkit

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Accepted type patterns, comma-separated (e.g. "image/*,.pdf")
	Accept string `env:"DROPKIT_ACCEPT"`

	// Size bounds in bytes; 0 means unbounded
	MinSize int64 `env:"DROPKIT_MIN_SIZE,default:0"`
	MaxSize int64 `env:"DROPKIT_MAX_SIZE,default:10485760"` // 10MB default

	// Batch limits
	MaxFiles int  `env:"DROPKIT_MAX_FILES,default:0"`
	Multiple bool `env:"DROPKIT_MULTIPLE,default:true"`

	// Reject files whose name does not match this glob (empty disables)
	NamePattern string `env:"DROPKIT_NAME_PATTERN"`

	// Reject duplicate files within a widget session
	RejectDuplicates bool `env:"DROPKIT_REJECT_DUPLICATES,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Policy builds the acceptance policy described by the config. An
// invalid name pattern is reported rather than silently dropped.
func (c *Config) Policy() (Policy, error) {
	p := Policy{
		MinSize:  c.MinSize,
		MaxSize:  c.MaxSize,
		MaxFiles: c.MaxFiles,
		Multiple: c.Multiple,
	}
	if c.Accept != "" {
		patterns := strings.Split(c.Accept, ",")
		for i, pattern := range patterns {
			patterns[i] = strings.TrimSpace(pattern)
		}
		p.Accept = AcceptPatterns(patterns...)
	}

	var validators []ValidatorFunc
	if c.NamePattern != "" {
		v, err := MatchNames(c.NamePattern)
		if err != nil {
			return Policy{}, err
		}
		validators = append(validators, v)
	}
	if c.RejectDuplicates {
		validators = append(validators, RejectDuplicates())
	}
	if len(validators) == 1 {
		p.Validator = validators[0]
	} else if len(validators) > 1 {
		p.Validator = ChainValidators(validators...)
	}
	return p, nil
}

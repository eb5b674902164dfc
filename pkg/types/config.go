package types

import "errors"

// Defaults applied when configuration does not override them.
const (
	// DefaultFileName is the inventory file used when no path is configured,
	// resolved against the working directory.
	DefaultFileName = "inventory.json"

	// DefaultThreshold is the low-stock threshold.
	DefaultThreshold = 5
)

// Config holds the inventory file path and the low-stock threshold.
type Config struct {
	File      string `json:"file" yaml:"file"`
	Threshold int64  `json:"threshold" yaml:"threshold"`
}

// Config validation errors.
var (
	ErrFileEmpty         = errors.New("file path must not be empty")
	ErrThresholdNegative = errors.New("threshold must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.File == "" {
		return ErrFileEmpty
	}
	if c.Threshold < 0 {
		return ErrThresholdNegative
	}
	return nil
}

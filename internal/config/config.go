package config

import (
	"strconv"
	"strings"
)

const (
	// DefaultTruncateLength is used when no usable length is configured
	DefaultTruncateLength = 1024

	// EnvPrefix prefixes every environment variable read by git-branch-name
	EnvPrefix = "GIT_BRANCH_NAME"
)

// Config is the configuration of one run. It is not modified once the command line is parsed.
type Config struct {
	HashTruncateLength   int
	BranchTruncateLength int
	Quiet                bool
	// StartingDirectory is empty when the search starts from the working directory
	StartingDirectory string
	// LogFile enables the rotating debug log when set
	LogFile string
	Debug   bool
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		HashTruncateLength:   DefaultTruncateLength,
		BranchTruncateLength: DefaultTruncateLength,
	}
}

// Normalize replaces non-positive lengths with the default
func (c Config) Normalize() Config {
	if c.HashTruncateLength <= 0 {
		c.HashTruncateLength = DefaultTruncateLength
	}
	if c.BranchTruncateLength <= 0 {
		c.BranchTruncateLength = DefaultTruncateLength
	}
	return c
}

// ParseLength parses a truncation length. Non-positive or unparsable input
// yields DefaultTruncateLength.
func ParseLength(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultTruncateLength
	}
	return n
}

// LengthValue is a pflag.Value for truncation lengths that never rejects input.
type LengthValue struct {
	n *int
}

// NewLengthValue binds a LengthValue to p. A non-positive *p reads as the default.
func NewLengthValue(p *int) *LengthValue {
	if *p <= 0 {
		*p = DefaultTruncateLength
	}
	return &LengthValue{n: p}
}

// Set implements pflag.Value
func (v *LengthValue) Set(s string) error {
	*v.n = ParseLength(s)
	return nil
}

// String implements pflag.Value
func (v *LengthValue) String() string {
	if v.n == nil {
		return strconv.Itoa(DefaultTruncateLength)
	}
	return strconv.Itoa(*v.n)
}

// Type implements pflag.Value
func (v *LengthValue) Type() string {
	return "int"
}

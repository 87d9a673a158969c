package options

import (
	"log/slog"

	"argmap/internal/common"
	"argmap/value"
)

// StringOrArray represents a value that can be a single string or an array of strings.
type StringOrArray []string

// BoolSpec declares boolean keys. All treats every long flag written
// without "=" as boolean.
type BoolSpec struct {
	All  bool
	Keys StringOrArray
}

// UnknownFunc is consulted for tokens that map to no declared key. Returning
// false drops the token from the record.
type UnknownFunc func(arg string) bool

// Options configures a single parse.
type Options struct {
	// String lists keys whose values are never coerced to numbers.
	// The key "_" applies to positional arguments.
	String StringOrArray `yaml:"string,omitempty"`

	// Boolean lists keys that never consume the following token.
	Boolean BoolSpec `yaml:"boolean,omitempty"`

	// Alias declares equivalent keys; every key in a group receives the
	// same values.
	Alias map[string]StringOrArray `yaml:"alias,omitempty"`

	// Default holds fallback values, applied in insertion order to keys the
	// tokens never wrote.
	Default *value.Map `yaml:"default,omitempty"`

	// StopEarly ends parsing at the first positional argument; it and all
	// remaining tokens are kept verbatim as positionals.
	StopEarly bool `yaml:"stopEarly,omitempty"`

	// Separate keeps tokens after a literal "--" under the "--" key
	// instead of appending them to the positionals.
	Separate bool `yaml:"--,omitempty"`

	Unknown UnknownFunc  `yaml:"-"`
	Logger  *slog.Logger `yaml:"-"`
}

// AllBooleans returns a BoolSpec that treats every long flag as boolean.
func AllBooleans() BoolSpec {
	return BoolSpec{All: true}
}

// Booleans returns a BoolSpec declaring the given keys.
func Booleans(keys ...string) BoolSpec {
	return BoolSpec{Keys: keys}
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Keys returns the non-empty entries, in order.
func (s StringOrArray) Keys() []string {
	return common.NonZero(s)
}

// LogHandler returns the configured logger, or one that discards everything.
func (o *Options) LogHandler() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.DiscardHandler)
}

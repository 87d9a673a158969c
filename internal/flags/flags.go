package flags

import (
	"regexp"
	"slices"

	"argmap/options"
)

var longFlagWithoutValue = regexp.MustCompile(`^--[^=]+$`)

// Flags is the classification derived from Options for a single parse.
type Flags struct {
	allBools bool
	bools    map[string]bool
	boolKeys []string
	strings  map[string]bool
	aliases  aliasGraph
	unknown  options.UnknownFunc
}

// New classifies the keys declared in opts.
func New(opts *options.Options) *Flags {
	f := &Flags{
		allBools: opts.Boolean.All,
		bools:    map[string]bool{},
		strings:  map[string]bool{},
		aliases:  buildAliases(opts.Alias),
		unknown:  opts.Unknown,
	}

	if !f.allBools {
		for _, key := range opts.Boolean.Keys.Keys() {
			if !f.bools[key] {
				f.bools[key] = true
				f.boolKeys = append(f.boolKeys, key)
			}
		}
	}

	for _, key := range opts.String.Keys() {
		f.strings[key] = true
		for _, alias := range f.aliases[key] {
			f.strings[alias] = true
		}
	}

	return f
}

// AllBools reports whether every long flag without "=" is boolean.
func (f *Flags) AllBools() bool { return f.allBools }

// IsBoolean reports whether key itself was declared boolean.
func (f *Flags) IsBoolean(key string) bool { return f.bools[key] }

// IsString reports whether key, directly or through an alias, is string-typed.
func (f *Flags) IsString(key string) bool { return f.strings[key] }

// Booleans returns the declared boolean keys in declaration order.
func (f *Flags) Booleans() []string { return slices.Clone(f.boolKeys) }

// Aliases returns the other members of key's alias group.
func (f *Flags) Aliases(key string) []string { return f.aliases[key] }

// AliasIsBoolean reports whether any alias of key was declared boolean.
func (f *Flags) AliasIsBoolean(key string) bool {
	return slices.ContainsFunc(f.aliases[key], f.IsBoolean)
}

// TakesValue reports whether key may consume the following token as its
// value: neither the key nor any of its aliases is boolean.
func (f *Flags) TakesValue(key string) bool {
	if f.bools[key] {
		return false
	}

	if _, ok := f.aliases[key]; ok {
		return !f.AliasIsBoolean(key)
	}

	return true
}

// Defined reports whether key is known to the configuration. arg is the raw
// token the key came from.
func (f *Flags) Defined(key, arg string) bool {
	if f.allBools && longFlagWithoutValue.MatchString(arg) {
		return true
	}

	_, aliased := f.aliases[key]

	return f.strings[key] || f.bools[key] || aliased
}

// HasUnknown reports whether an unknown-argument callback is configured.
func (f *Flags) HasUnknown() bool { return f.unknown != nil }

// Admit asks the unknown-argument callback about arg. Without a callback
// every argument is admitted.
func (f *Flags) Admit(arg string) bool {
	return f.unknown == nil || f.unknown(arg)
}

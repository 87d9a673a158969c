package parser

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"argmap/internal/flags"
	"argmap/internal/keypath"
	"argmap/options"
	"argmap/value"
)

const (
	// PositionalKey holds unflagged tokens in encounter order.
	PositionalKey = "_"
	// SeparatorKey holds the tokens after "--" when Options.Separate is set.
	SeparatorKey = "--"
)

// parser is the state of one Parse call.
type parser struct {
	opts   *options.Options
	flags  *flags.Flags
	record *value.Map
	log    *slog.Logger
}

// ParseProcess parses the arguments the current process was started with.
func ParseProcess(opts *options.Options) *Result {
	return Parse(os.Args[1:], opts)
}

// Parse builds a record from args. A nil opts behaves like empty Options.
func Parse(args []string, opts *options.Options) *Result {
	if opts == nil {
		opts = &options.Options{}
	}

	p := &parser{
		opts:   opts,
		flags:  flags.New(opts),
		record: value.NewMap().Set(PositionalKey, value.List()),
		log:    opts.LogHandler(),
	}

	p.log.Debug("Parse started.", "tokens", len(args))
	p.reportDiagnostics()

	for _, key := range p.flags.Booleans() {
		seed, ok := opts.Default.Get(key)
		if !ok {
			seed = value.Bool(false)
		}

		p.setArg(key, seed, "")
	}

	var separated []string
	if idx := slices.Index(args, SeparatorKey); idx != -1 {
		separated = args[idx+1:]
		args = args[:idx]
	}

	p.tokenize(args)
	p.applyDefaults()

	if opts.Separate {
		p.record.Set(SeparatorKey, value.Strings(separated...))
	} else {
		for _, token := range separated {
			p.pushPositional(value.String(token))
		}
	}

	p.log.Debug("Parse finished.", "keys", p.record.Len(), "separated", len(separated))

	return &Result{record: p.record}
}

func (p *parser) reportDiagnostics() {
	if !p.log.Enabled(context.Background(), slog.LevelWarn) {
		return
	}

	diags := p.opts.Validate()
	for _, d := range diags.All() {
		p.log.Warn("Questionable parser option.", "severity", d.Severity.String(), "diagnostic", d.String())
	}
}

// setArg coerces val for key and writes it to key and every alias of key.
// arg is the raw token; it is empty for values that did not come from a
// token, which bypasses the unknown-argument callback.
func (p *parser) setArg(key string, val value.Value, arg string) {
	if arg != "" && p.flags.HasUnknown() && !p.flags.Defined(key, arg) {
		if !p.flags.Admit(arg) {
			p.log.Debug("Unknown argument rejected.", "arg", arg, "key", key)
			return
		}
	}

	if s, ok := val.AsString(); ok {
		val = value.Coerce(s, p.flags.IsString(key))
	}

	p.setKey(key, val)

	for _, alias := range p.flags.Aliases(key) {
		p.setKey(alias, val)
	}
}

func (p *parser) setKey(key string, val value.Value) {
	if !keypath.Set(p.record, keypath.Split(key), val.Clone(), p.flags.IsBoolean) {
		p.log.Debug("Key path dropped.", "key", key)
	}
}

func (p *parser) pushPositional(v value.Value) {
	positional, _ := p.record.Get(PositionalKey)
	if positional.Kind() != value.KindList {
		positional = value.List()
	}

	p.record.Set(PositionalKey, positional.Push(v))
}

// applyDefaults writes every default whose key the tokens never reached.
func (p *parser) applyDefaults() {
	p.opts.Default.Range(func(key string, v value.Value) bool {
		if keypath.Has(p.record, keypath.Split(key)) {
			return true
		}

		p.setKey(key, v)

		for _, alias := range p.flags.Aliases(key) {
			p.setKey(alias, v)
		}

		return true
	})
}

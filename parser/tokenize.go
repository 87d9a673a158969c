package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"argmap/value"
)

var (
	longWithValue   = regexp.MustCompile(`^--.+=`)
	longKeyValue    = regexp.MustCompile(`(?s)^--([^=]+)=(.*)$`)
	longNegated     = regexp.MustCompile(`^--no-(.+)`)
	longFlag        = regexp.MustCompile(`^--(.+)`)
	shortFlags      = regexp.MustCompile(`^-[^-]+`)
	boolLiteral     = regexp.MustCompile(`^(true|false)$`)
	shortLookahead  = regexp.MustCompile(`^(-|--)[^-]`)
	numericTail     = regexp.MustCompile(`-?\d+(\.\d*)?(e-?\d+)?$`)
	nonWordRune     = regexp.MustCompile(`\W`)
	asciiLetterRune = regexp.MustCompile(`[A-Za-z]`)
)

// tokenize walks args once, dispatching each token on its shape.
func (p *parser) tokenize(args []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		next, hasNext := "", i+1 < len(args)
		if hasNext {
			next = args[i+1]
		}

		switch {
		case longWithValue.MatchString(arg):
			p.longWithValue(arg)

		case longNegated.MatchString(arg):
			key := longNegated.FindStringSubmatch(arg)[1]
			p.setArg(key, value.Bool(false), arg)

		case longFlag.MatchString(arg):
			key := longFlag.FindStringSubmatch(arg)[1]
			if p.longFlag(key, arg, next, hasNext) {
				i++
			}

		case shortFlags.MatchString(arg):
			if p.shortFlags(arg, next, hasNext) {
				i++
			}

		default:
			if p.flags.Admit(arg) {
				p.pushPositional(value.Coerce(arg, p.flags.IsString(PositionalKey)))
			} else {
				p.log.Debug("Unknown argument rejected.", "arg", arg)
			}

			if p.opts.StopEarly {
				for _, rest := range args[i+1:] {
					p.pushPositional(value.String(rest))
				}

				p.log.Debug("Stopped at first positional argument.", "arg", arg, "remaining", len(args)-i-1)

				return
			}
		}
	}
}

// longWithValue handles --key=value. A token such as "--=x=y" that has no
// key before the first "=" is ignored.
func (p *parser) longWithValue(arg string) {
	m := longKeyValue.FindStringSubmatch(arg)
	if m == nil {
		return
	}

	key, raw := m[1], m[2]
	if p.flags.IsBoolean(key) {
		p.setArg(key, value.Bool(raw != "false"), arg)
		return
	}

	p.setArg(key, value.String(raw), arg)
}

// longFlag handles --key and reports whether the following token was
// consumed as its value.
func (p *parser) longFlag(key, arg, next string, hasNext bool) bool {
	switch {
	case hasNext && !strings.HasPrefix(next, "-") && !p.flags.AllBools() && p.flags.TakesValue(key):
		p.setArg(key, value.String(next), arg)
		return true

	case hasNext && boolLiteral.MatchString(next):
		p.setArg(key, value.Bool(next == "true"), arg)
		return true

	default:
		p.setArg(key, p.bare(key), arg)
		return false
	}
}

// shortFlags handles a bundle such as -abc, -n5 or -f=out.txt and reports
// whether the following token was consumed as the value of the last letter.
func (p *parser) shortFlags(arg, next string, hasNext bool) bool {
	// Letters are sliced from arg by byte offset so invalid UTF-8 survives
	// in keys unchanged.
	var starts []int
	for i := 1; i < len(arg); {
		_, size := utf8.DecodeRuneInString(arg[i:])
		starts = append(starts, i)
		i += size
	}

	last := len(starts) - 1

	for j := range last {
		key := arg[starts[j]:starts[j+1]]
		rest := arg[starts[j+1]:]
		alpha := asciiLetterRune.MatchString(key)

		switch {
		case rest == "-":
			p.setArg(key, value.String(rest), arg)
			continue

		case alpha && strings.HasPrefix(rest, "="):
			p.setArg(key, value.String(rest[1:]), arg)
			return false

		case alpha && numericTail.MatchString(rest):
			p.setArg(key, value.String(rest), arg)
			return false

		case j+1 < last && nonWordRune.MatchString(arg[starts[j+1]:starts[j+2]]):
			p.setArg(key, value.String(rest), arg)
			return false
		}

		p.setArg(key, p.bare(key), arg)
	}

	key := arg[starts[last]:]
	if key == "-" {
		return false
	}

	switch {
	case hasNext && next != "" && !shortLookahead.MatchString(next) && p.flags.TakesValue(key):
		p.setArg(key, value.String(next), arg)
		return true

	case hasNext && boolLiteral.MatchString(next):
		p.setArg(key, value.Bool(next == "true"), arg)
		return true

	default:
		p.setArg(key, p.bare(key), arg)
		return false
	}
}

// bare is the value of a flag written without one.
func (p *parser) bare(key string) value.Value {
	if p.flags.IsString(key) {
		return value.String("")
	}

	return value.Bool(true)
}

// Package options describes how a token list is turned into a record.
//
// Options can be built as a Go literal or decoded from YAML:
//
//	string: [name, _]
//	boolean: [verbose, dry-run]   # or `boolean: true` for every long flag
//	alias:
//	  v: verbose
//	  f: [file, F]
//	default:
//	  port: 8080
//	  verbose: false
//	stopEarly: false
//	--: true
//
// The unknown-argument callback and the logger can only be set from Go.
package options

// Package parser turns a list of command-line tokens into a Result record.
//
// Tokens are classified, in order of priority, as:
//  1. --key=value   long flag with an inline value
//  2. --no-key      negation, assigns false
//  3. --key         long flag; may take the next token as its value
//  4. -abc          bundled short flags, optionally ending in a value
//  5. anything else positional argument
//
// Everything after a literal "--" is never parsed. Values that look numeric
// become numbers unless their key is declared string; repeated keys collect
// into lists; dotted keys build nested maps. Parse never fails: tokens that
// fit no shape end up positional or are ignored.
package parser

// Package value provides the dynamically shaped values a parsed argument
// record is made of.
//
// A Value is a tagged union over six kinds:
//
//   - KindNull: an explicit null, e.g. a default configured as null
//   - KindBool: flags such as --verbose or --no-color
//   - KindNumber: numeric-looking tokens, stored as float64
//   - KindString: everything else
//   - KindList: repeated assignments and positional arguments
//   - KindMap: nested objects created by dotted keys (--a.b.c=1)
//
// The zero Value has no kind and stands for "absent". Map keeps insertion
// order so that records dump in the order keys were first written.
package value

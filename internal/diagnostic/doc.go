// Package diagnostic provides structured warnings and errors about a
// parser configuration.
//
// Parsing itself never fails; diagnostics only describe options that are
// contradictory or will be silently ignored, such as:
//   - Keys declared both string and boolean
//   - Key paths running through guarded segments
//   - Empty key names
package diagnostic

// Package flags classifies keys before any token is read: which keys are
// forced to strings, which are booleans, and which keys are aliases of each
// other.
//
// Alias declarations are merged into groups that are symmetric and
// transitively closed, so declaring a→b and b→c puts a, b and c in a
// single group. String typing spreads across a whole group; boolean typing
// does not, but AliasIsBoolean lets lookahead decisions see it.
package flags

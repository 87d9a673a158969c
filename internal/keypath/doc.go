// Package keypath writes values into a record at dotted key paths.
//
// "a.b.c" addresses record["a"]["b"]["c"]; missing intermediate objects are
// created on the way down. Lists can be walked with decimal indexes
// ("items.0.name"). Paths that name __proto__ or constructor are never
// written, and neither are paths that run through a scalar.
package keypath

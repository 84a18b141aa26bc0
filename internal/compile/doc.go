// Package compile turns translated catalogs into compiled catalogs.
//
// Every message is parsed and written back either as canonical message text
// or as the tagged-node JSON form. A message that does not parse fails the
// run unless SkipErrors is set, in which case it is left out and reported.
// Folder compiles each locale of a directory on its own; one broken locale
// never prevents the others from being written.
package compile

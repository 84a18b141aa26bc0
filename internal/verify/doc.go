// Package verify checks translated catalogs against the source locale.
//
// Three checks are available: ids missing from a target, ids a target has
// that the source lacks, and structural equality. Two messages are
// structurally equal when they use the same arguments, the same selectors
// with the same branch labels and the same tags nested the same way; the
// literal text is free to differ. A translation that does not parse is a
// mismatch.
package verify

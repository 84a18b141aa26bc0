// Package extract runs the extraction half of the pipeline: source files are
// parsed and scanned for message declarations, ids are assigned, every
// defaultMessage is validated (and optionally flattened), and the per-file
// results are merged into one catalog ordered by id.
//
// Files are processed by a bounded worker pool; merging happens in input
// order on the calling goroutine, so output does not depend on scheduling.
// When Options.CacheDir is set, clean per-file results are kept on disk in
// msgpack, keyed by content hash and an options fingerprint.
package extract

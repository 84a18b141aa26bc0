// Package ident generates deterministic message ids from content hashes.
package ident

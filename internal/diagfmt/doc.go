// Package diagfmt renders diagnostics for people (Pretty, Summary) and for
// tools (JSON).
package diagfmt

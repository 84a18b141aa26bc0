// Package jsonx reads JSON with key order preserved and writes JSON with a
// fixed key order. Both sides use github.com/goccy/go-json.
package jsonx

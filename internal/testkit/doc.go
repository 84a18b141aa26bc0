// Package testkit holds shared checks for tests and fuzz harnesses that
// parse source files.
package testkit

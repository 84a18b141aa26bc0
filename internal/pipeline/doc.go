// Package pipeline carries progress events from the extract, compile and
// verify runs to whoever renders them (the terminal UI, a trace, tests).
package pipeline

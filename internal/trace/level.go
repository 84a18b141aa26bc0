package trace

import (
	"fmt"
	"strings"
)

// Level controls which events reach the trace output.
type Level uint8

const (
	LevelOff Level = iota
	// LevelError keeps events in memory and prints them only when the
	// command fails.
	LevelError
	LevelStage
	LevelFile
)

var levelNames = [...]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelStage: "stage",
	LevelFile:  "file",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a --trace-level value.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if s == name {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (expected off|error|stage|file)", s)
}

// records reports whether spans of scope are opened at level l.
func (l Level) records(scope Scope) bool {
	switch l {
	case LevelError, LevelFile:
		return true
	case LevelStage:
		return scope != ScopeFile
	}
	return false
}

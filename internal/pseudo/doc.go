// Package pseudo derives pseudo-locale variants of parsed messages.
package pseudo

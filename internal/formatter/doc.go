// Package formatter provides the built-in adapters between extracted
// catalogs and the file shapes of translation tools.
//
// A formatter is selected by name (default, simple, transifex, smartling,
// crowdin, lokalise). Format runs after extraction, Compile before compiling.
package formatter

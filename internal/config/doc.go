// Package config loads intlc.toml, the optional project configuration.
//
// The file is found by walking up from the working directory. Values act as
// defaults for command-line flags; a flag given explicitly always wins.
package config

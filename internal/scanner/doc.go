// Package scanner recognises message declarations in parsed JS/TS/JSX source.
//
// Two shapes are recognised: JSX elements whose name is one of the configured
// component names (id, defaultMessage and description attributes) and calls of
// configured functions whose first argument is a descriptor object, or for
// defineMessages a map of key to descriptor object. formatMessage calls are
// always recognised, including member calls such as intl.formatMessage.
//
// Field values must be string literals, templates without substitutions or a
// '+' concatenation of those; anything else produces a ShapeError.
package scanner

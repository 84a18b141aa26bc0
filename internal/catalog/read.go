package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"intlc/internal/jsonx"
)

// File is a decoded catalog file: its top-level object with key order
// preserved, plus duplicate keys found while decoding.
type File struct {
	Path       string
	Object     jsonx.Object
	Duplicates []jsonx.Duplicate
}

// DecodeError reports a catalog that is not a JSON object.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses catalog content.
func Decode(path string, data []byte) (*File, error) {
	obj, dups, err := jsonx.DecodeObject(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &File{Path: path, Object: obj, Duplicates: dups}, nil
}

// Load reads and decodes a catalog file.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// LocaleOf returns the locale encoded in a "<locale>.json" file name.
func LocaleOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// Package catalog holds extracted messages and compiled catalogs and reads
// catalog files.
package catalog

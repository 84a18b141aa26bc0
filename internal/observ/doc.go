// Package observ measures command phases for --timings.
package observ

package fuzztests

import (
	"context"
	"testing"
	"time"

	"intlc/internal/diag"
	"intlc/internal/parser"
	"intlc/internal/source"
	"intlc/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addSourceSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.tsx", input))
		bag := diag.NewBag(128)
		astFile := parser.ParseFile(file, parser.Options{JSX: true, Reporter: diag.BagReporter{Bag: bag}})
		if bag.HasErrors() {
			// после восстановления по ошибке спаны не гарантируются
			return
		}
		if err := testkit.CheckSpanInvariants(astFile, file); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input, in
// both the JSX and the plain TypeScript grammar.
func FuzzParserNoHang(f *testing.F) {
	addSourceSeeds(f)

	f.Add([]byte("<a><b></a>"))                            // mismatched closing tag
	f.Add([]byte("f(<T,>(x: T) => x)"))                    // generic arrow
	f.Add([]byte("{{{{[[[(((("))                           // unclosed brackets
	f.Add([]byte(")]}>"))                                  // stray closers
	f.Add([]byte("`${`${`${"))                             // nested unterminated templates
	f.Add([]byte("<Foo bar={<Baz qux={{a: <b/>}} />} />")) // nested JSX attributes

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for _, jsx := range []bool{true, false} {
				fs := source.NewFileSet()
				file := fs.Get(fs.AddVirtual("fuzz.tsx", input))
				bag := diag.NewBag(128)
				_ = parser.ParseFile(file, parser.Options{JSX: jsx, Reporter: diag.BagReporter{Bag: bag}})
			}
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}

package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"intlc/internal/ast"
	"intlc/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Sp points to sf and stays within its content
// 2) every node span belongs to sf, is ordered (Start <= End) and ends inside the file
// 3) top-level nodes appear in source order
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	// 1) file span sanity
	if f.Sp.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Sp.File, sf.ID)
	}
	if f.Sp.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Sp.End, lenContent)
	}

	// 2) все узлы внутри файла
	var bad error
	ast.Inspect(f, func(n ast.Node) bool {
		if bad != nil {
			return false
		}
		sp := n.Span()
		switch {
		case sp.File != sf.ID:
			bad = fmt.Errorf("%T span file mismatch: got=%d want=%d", n, sp.File, sf.ID)
		case sp.Start > sp.End:
			bad = fmt.Errorf("%T span is inverted: %v", n, sp)
		case sp.End > lenContent:
			bad = fmt.Errorf("%T span %v ends beyond content (%d)", n, sp, lenContent)
		}
		return bad == nil
	})
	if bad != nil {
		return bad
	}

	// 3) top-level order
	var prev uint32
	for i, n := range f.Nodes {
		sp := n.Span()
		if i > 0 && sp.Start < prev {
			return fmt.Errorf("node %d (%T) at %d starts before the previous node (%d)", i, n, sp.Start, prev)
		}
		prev = sp.Start
	}
	return nil
}

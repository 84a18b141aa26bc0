package scanner

import (
	"strings"

	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/token"
)

// objectArg снимает скобки и TS-приведения (as const, satisfies T) и
// возвращает объектный литерал, если выражение им является.
func objectArg(e *ast.Expr) (*ast.ObjectLit, bool) {
	items := stripAssertion(e.Items)
	if len(items) != 1 {
		return nil, false
	}
	switch n := items[0].(type) {
	case *ast.ObjectLit:
		return n, true
	case *ast.Group:
		if n.Open == token.LParen && len(n.Elems) == 1 {
			return objectArg(n.Elems[0])
		}
	}
	return nil, false
}

func stripAssertion(items []ast.Node) []ast.Node {
	for i, it := range items {
		if t, ok := it.(*ast.Token); ok && (t.Tok.Kind == token.KwAs || t.Tok.Kind == token.KwSatisfies) {
			return items[:i]
		}
	}
	return items
}

// evalExpr вычисляет строковое значение поля: литерал, шаблон без
// подстановок или их конкатенация через '+'.
func evalExpr(e *ast.Expr) (string, *ShapeError) {
	if e == nil {
		return "", &ShapeError{Code: diag.DscNonLiteralField, Msg: "has no value"}
	}
	items := stripAssertion(e.Items)
	if len(items) == 0 {
		return "", &ShapeError{Code: diag.DscNonLiteralField, Span: e.Sp, Msg: "has no value"}
	}

	var sb strings.Builder
	for i, it := range items {
		if i%2 == 1 {
			t, ok := it.(*ast.Token)
			if !ok || t.Tok.Kind != token.Plus {
				return "", nonLiteral(e)
			}
			continue
		}
		v, err := evalOperand(it)
		if err != nil {
			if err.Span.Empty() {
				err.Span = e.Sp
			}
			return "", err
		}
		sb.WriteString(v)
	}
	if len(items)%2 == 0 {
		// висящий '+'
		return "", nonLiteral(e)
	}
	return sb.String(), nil
}

func evalOperand(n ast.Node) (string, *ShapeError) {
	switch n := n.(type) {
	case *ast.StringLit:
		return n.Value, nil
	case *ast.TemplateLit:
		if n.HasSubstitutions() {
			return "", &ShapeError{
				Code: diag.DscInterpolatedField,
				Span: n.Sp,
				Msg:  "must not contain ${...} interpolations",
			}
		}
		return strings.Join(n.Quasis, ""), nil
	case *ast.Group:
		if n.Open == token.LParen && len(n.Elems) == 1 {
			return evalExpr(n.Elems[0])
		}
	}
	return "", &ShapeError{Code: diag.DscNonLiteralField, Span: n.Span(), Msg: "must be a string literal"}
}

func nonLiteral(e *ast.Expr) *ShapeError {
	return &ShapeError{Code: diag.DscNonLiteralField, Span: e.Sp, Msg: "must be a string literal"}
}

func evalAttr(attr *ast.JSXAttr) (string, *ShapeError) {
	switch v := attr.Value.(type) {
	case *ast.StringLit:
		return v.Value, nil
	case *ast.JSXExprContainer:
		if v.Expr == nil {
			return "", &ShapeError{Code: diag.DscNonLiteralField, Span: v.Sp, Msg: "has no value"}
		}
		return evalExpr(v.Expr)
	case nil:
		return "", &ShapeError{Code: diag.DscNonLiteralField, Span: attr.Sp, Msg: "has no value"}
	default:
		return "", &ShapeError{Code: diag.DscNonLiteralField, Span: attr.Sp, Msg: "must be a string literal"}
	}
}

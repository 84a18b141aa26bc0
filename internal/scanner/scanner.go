package scanner

import (
	"maps"

	"intlc/internal/ast"
	"intlc/internal/diag"
	"intlc/internal/source"
	"intlc/internal/token"
)

// Descriptor is one message declaration found in source code.
type Descriptor struct {
	ID             string
	DefaultMessage string
	Description    string
	HasDescription bool
	// Span covers the descriptor object or the JSX element.
	Span source.Span
	// Meta holds pragma metadata in effect at the declaration site.
	Meta map[string]string
}

// Result is the outcome of scanning one file.
type Result struct {
	Descriptors []Descriptor
	// Meta is the file-level pragma metadata.
	Meta   map[string]string
	Errors []*ShapeError
}

// HasErrors reports whether any error-severity shape problem was found.
func (r *Result) HasErrors() bool {
	for _, e := range r.Errors {
		if e.Severity() == diag.SevError {
			return true
		}
	}
	return false
}

// Report forwards all shape errors to reporter.
func (r *Result) Report(reporter diag.Reporter) {
	if reporter == nil {
		return
	}
	for _, e := range r.Errors {
		d := e.Diagnostic()
		reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
	}
}

type scanner struct {
	cfg      Config
	fileMeta map[string]string
	res      Result
}

// Scan finds every message declaration in f.
func Scan(f *ast.File, cfg Config) Result {
	s := &scanner{cfg: cfg}
	// битые записи сообщаем один раз, где бы ни стоял комментарий
	collectPragma(f.Comments, cfg.Pragma, s.addErr)
	s.fileMeta = collectPragma(headerComments(f), cfg.Pragma, nil)
	s.res.Meta = s.fileMeta

	ast.Inspect(f, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			if !n.Decl && n.Callee != nil && cfg.isFunction(n.Callee.String(), n.Callee.Last()) {
				s.scanCall(n)
			}
		case *ast.JSXElement:
			if n.Name != "" && cfg.isComponent(n.Name) {
				s.scanJSX(n)
			}
		}
		return true
	})
	return s.res
}

// headerComments returns the comments that precede the first top-level node.
// Only they carry file-wide pragma metadata.
func headerComments(f *ast.File) []token.Trivia {
	if len(f.Nodes) == 0 {
		return f.Comments
	}
	first := f.Nodes[0].Span().Start
	n := 0
	for n < len(f.Comments) && f.Comments[n].Span.End <= first {
		n++
	}
	return f.Comments[:n]
}

func (s *scanner) addErr(e *ShapeError) {
	s.res.Errors = append(s.res.Errors, e)
}

// siteMeta: pragma у места объявления перекрывает файловую.
func (s *scanner) siteMeta(leading []token.Trivia) map[string]string {
	local := collectPragma(leading, s.cfg.Pragma, nil)
	if len(local) == 0 {
		if len(s.fileMeta) == 0 {
			return nil
		}
		return maps.Clone(s.fileMeta)
	}
	out := make(map[string]string, len(s.fileMeta)+len(local))
	maps.Copy(out, s.fileMeta)
	maps.Copy(out, local)
	return out
}

func (s *scanner) scanCall(call *ast.CallExpr) {
	if len(call.Args) == 0 {
		return
	}
	obj, ok := objectArg(call.Args[0])
	if !ok {
		// formatMessage(messages.greeting) ссылается на уже объявленное сообщение
		return
	}
	meta := s.siteMeta(call.Leading)

	if call.Callee.Last() != "defineMessages" {
		s.scanObject(obj, meta)
		return
	}
	for _, prop := range obj.Props {
		if prop.Kind != ast.PropKeyValue || prop.Value == nil {
			continue
		}
		inner, ok := objectArg(prop.Value)
		if !ok {
			s.addErr(&ShapeError{
				Code:  diag.DscInvalidArgument,
				Span:  prop.Value.Sp,
				Field: prop.Key,
				Msg:   "is not an object literal and is ignored",
			})
			continue
		}
		s.scanObject(inner, meta)
	}
}

func (s *scanner) scanObject(obj *ast.ObjectLit, meta map[string]string) {
	var fields [3]fieldValue
	var present [3]bool
	for _, prop := range obj.Props {
		switch prop.Kind {
		case ast.PropKeyValue:
		case ast.PropSpread, ast.PropComputed:
			s.addErr(&ShapeError{
				Code: diag.DscUnsupportedProperty,
				Span: prop.Sp,
				Msg:  "spread and computed properties are not evaluated",
			})
			continue
		default:
			continue
		}
		idx := fieldIndex(prop.Key)
		if idx < 0 {
			continue
		}
		v, err := evalExpr(prop.Value)
		present[idx] = true
		if err != nil {
			err.Field = prop.Key
			s.addErr(err)
			fields[idx] = fieldValue{bad: true}
			continue
		}
		fields[idx] = fieldValue{text: v}
	}
	s.emit(obj.Sp, fields, present, meta)
}

func (s *scanner) scanJSX(el *ast.JSXElement) {
	var fields [3]fieldValue
	var present [3]bool
	for _, name := range fieldNames {
		attr := el.Attr(name)
		if attr == nil {
			continue
		}
		idx := fieldIndex(name)
		present[idx] = true
		v, err := evalAttr(attr)
		if err != nil {
			err.Field = name
			s.addErr(err)
			fields[idx] = fieldValue{bad: true}
			continue
		}
		fields[idx] = fieldValue{text: v}
	}
	sp := el.Sp
	s.emit(sp, fields, present, s.siteMeta(el.Leading))
}

type fieldValue struct {
	text string
	bad  bool
}

var fieldNames = [3]string{"id", "defaultMessage", "description"}

const (
	fieldID = iota
	fieldMessage
	fieldDescription
)

func fieldIndex(key string) int {
	for i, n := range fieldNames {
		if n == key {
			return i
		}
	}
	return -1
}

func (s *scanner) emit(sp source.Span, fields [3]fieldValue, present [3]bool, meta map[string]string) {
	if !present[fieldID] && !present[fieldMessage] {
		return
	}
	for _, f := range fields {
		if f.bad {
			// поле уже отправлено в Errors, частичный дескриптор не выдаём
			return
		}
	}
	if !present[fieldMessage] {
		s.addErr(&ShapeError{
			Code: diag.DscMissingMessage,
			Span: sp,
			Msg:  "message " + quote(fields[fieldID].text) + " has no defaultMessage and is skipped",
		})
		return
	}

	d := Descriptor{
		ID:             fields[fieldID].text,
		DefaultMessage: fields[fieldMessage].text,
		Description:    fields[fieldDescription].text,
		HasDescription: present[fieldDescription],
		Span:           sp,
		Meta:           meta,
	}
	if !s.cfg.PreserveWhitespace {
		d.DefaultMessage = NormalizeWhitespace(d.DefaultMessage)
		d.Description = NormalizeWhitespace(d.Description)
	}
	s.res.Descriptors = append(s.res.Descriptors, d)
}

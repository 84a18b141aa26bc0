package ast

import (
	"intlc/internal/source"
	"intlc/internal/token"
)

// File is the parsed form of one source unit.
type File struct {
	Sp       source.Span
	ID       source.FileID
	Nodes    []Node
	Comments []token.Trivia // все комментарии файла в порядке появления
}

func (f *File) Span() source.Span { return f.Sp }
func (*File) node()               {}

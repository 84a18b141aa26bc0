package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token (including contextual words).
	Ident
	// PrivateName represents a class private name such as #count.
	PrivateName
	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a single or double quoted string literal.
	StringLit
	// RegexLit represents a regular expression literal with flags.
	RegexLit
	// NoSubstTemplate represents a template literal without substitutions: `text`.
	NoSubstTemplate
	// TemplateHead represents the opening part of a template: `text${
	TemplateHead
	// TemplateMiddle represents a middle part of a template: }text${
	TemplateMiddle
	// TemplateTail represents the closing part of a template: }text`
	TemplateTail

	// JSXText represents raw text between JSX tags.
	JSXText
	// JSXName represents an identifier inside a JSX tag; it may contain '-'.
	JSXName
	// JSXString represents a quoted JSX attribute value (no escape processing).
	JSXString

	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwOf represents the contextual 'of' keyword.
	KwOf // of
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwYield represents the contextual 'yield' keyword.
	KwYield // yield
	// KwAwait represents the contextual 'await' keyword.
	KwAwait // await
	// KwAs represents the TypeScript 'as' operator.
	KwAs // as
	// KwSatisfies represents the TypeScript 'satisfies' operator.
	KwSatisfies // satisfies

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// Bang represents the bang operator token.
	Bang // !
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Question represents the question operator token.
	Question // ?
	// QuestionDot represents the optional chaining token.
	QuestionDot // ?.
	// Colon represents the colon operator token.
	Colon // :
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// DotDotDot represents the spread / rest token.
	DotDotDot // ...
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// LParen represents the left parenthesis operator token.
	LParen // (
	// RParen represents the right parenthesis operator token.
	RParen // )
	// LBrace represents the left brace operator token.
	LBrace // {
	// RBrace represents the right brace operator token.
	RBrace // }
	// LBracket represents the left bracket operator token.
	LBracket // [
	// RBracket represents the right bracket operator token.
	RBracket // ]
	// At represents the decorator token.
	At // @
	// Operator represents every other multi-character operator (==, &&, +=, ...).
	// The exact operator is in Token.Text.
	Operator
)

var kindNames = [...]string{
	Invalid:         "Invalid",
	EOF:             "EOF",
	Ident:           "Ident",
	PrivateName:     "PrivateName",
	NumberLit:       "NumberLit",
	StringLit:       "StringLit",
	RegexLit:        "RegexLit",
	NoSubstTemplate: "NoSubstTemplate",
	TemplateHead:    "TemplateHead",
	TemplateMiddle:  "TemplateMiddle",
	TemplateTail:    "TemplateTail",
	JSXText:         "JSXText",
	JSXName:         "JSXName",
	JSXString:       "JSXString",
	KwThis:          "this",
	KwReturn:        "return",
	KwTypeof:        "typeof",
	KwInstanceof:    "instanceof",
	KwIn:            "in",
	KwOf:            "of",
	KwNew:           "new",
	KwDelete:        "delete",
	KwVoid:          "void",
	KwThrow:         "throw",
	KwCase:          "case",
	KwDo:            "do",
	KwElse:          "else",
	KwYield:         "yield",
	KwAwait:         "await",
	KwAs:            "as",
	KwSatisfies:     "satisfies",
	Plus:            "+",
	Minus:           "-",
	Star:            "*",
	Slash:           "/",
	Percent:         "%",
	Assign:          "=",
	Bang:            "!",
	Tilde:           "~",
	Lt:              "<",
	Gt:              ">",
	Amp:             "&",
	Pipe:            "|",
	Caret:           "^",
	Question:        "?",
	QuestionDot:     "?.",
	Colon:           ":",
	Semicolon:       ";",
	Comma:           ",",
	Dot:             ".",
	DotDotDot:       "...",
	FatArrow:        "=>",
	LParen:          "(",
	RParen:          ")",
	LBrace:          "{",
	RBrace:          "}",
	LBracket:        "[",
	RBracket:        "]",
	At:              "@",
	Operator:        "Operator",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

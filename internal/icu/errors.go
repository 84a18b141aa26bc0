package icu

import "fmt"

// ErrorKind classifies message syntax errors.
type ErrorKind uint8

const (
	ErrNone ErrorKind = iota
	ErrUnbalancedBrace
	ErrExpectArgumentName
	ErrUnknownArgumentType
	ErrExpectArgumentStyle
	ErrExpectOptions
	ErrExpectSelectorBody
	ErrDuplicateSelector
	ErrMissingOther
	ErrInvalidOffset
	ErrUnterminatedQuote
	ErrInvalidTag
	ErrUnclosedTag
	ErrUnmatchedClosingTag
	ErrInvalidSelectorLabel
)

var errorKindNames = [...]string{
	ErrNone:                 "NONE",
	ErrUnbalancedBrace:      "UNBALANCED_BRACE",
	ErrExpectArgumentName:   "EXPECT_ARGUMENT_NAME",
	ErrUnknownArgumentType:  "UNKNOWN_ARGUMENT_TYPE",
	ErrExpectArgumentStyle:  "EXPECT_ARGUMENT_STYLE",
	ErrExpectOptions:        "EXPECT_OPTIONS",
	ErrExpectSelectorBody:   "EXPECT_SELECTOR_BODY",
	ErrDuplicateSelector:    "DUPLICATE_SELECTOR",
	ErrMissingOther:         "MISSING_OTHER_CLAUSE",
	ErrInvalidOffset:        "INVALID_OFFSET",
	ErrUnterminatedQuote:    "UNTERMINATED_QUOTE",
	ErrInvalidTag:           "INVALID_TAG",
	ErrUnclosedTag:          "UNCLOSED_TAG",
	ErrUnmatchedClosingTag:  "UNMATCHED_CLOSING_TAG",
	ErrInvalidSelectorLabel: "INVALID_SELECTOR_LABEL",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError is a MessageFormat grammar violation. Offset and End are byte
// offsets into the message.
type SyntaxError struct {
	Kind    ErrorKind
	Offset  int
	End     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Исходный код (JS/TS/JSX): SourceParseError
	SrcInfo                 Code = 1000
	SrcUnexpectedToken      Code = 1001
	SrcUnterminatedString   Code = 1002
	SrcUnterminatedTemplate Code = 1003
	SrcUnterminatedComment  Code = 1004
	SrcUnterminatedRegex    Code = 1005
	SrcUnclosedDelimiter    Code = 1006
	SrcJSXMismatchedTag     Code = 1007
	SrcJSXUnterminated      Code = 1008

	// Дескрипторы сообщений: DescriptorShapeError
	DscInfo                Code = 2000
	DscNonLiteralField     Code = 2001 // id/defaultMessage/description is not a string literal
	DscInterpolatedField   Code = 2002 // template literal with ${...}
	DscInvalidArgument     Code = 2003 // call argument is not an object literal
	DscUnsupportedProperty Code = 2004 // spread or computed key inside a descriptor
	DscMissingMessage      Code = 2005 // id without defaultMessage
	DscInvalidPragma       Code = 2006

	// ICU MessageFormat: MessageSyntaxError.
	// Offsets from MsgInfo mirror icu.ErrorKind values.
	MsgInfo                 Code = 3000
	MsgUnbalancedBrace      Code = 3001
	MsgExpectArgumentName   Code = 3002
	MsgUnknownArgumentType  Code = 3003
	MsgExpectArgumentStyle  Code = 3004
	MsgExpectOptions        Code = 3005
	MsgExpectSelectorBody   Code = 3006
	MsgDuplicateSelector    Code = 3007
	MsgMissingOther         Code = 3008
	MsgInvalidOffset        Code = 3009
	MsgUnterminatedQuote    Code = 3010
	MsgInvalidTag           Code = 3011
	MsgUnclosedTag          Code = 3012
	MsgUnmatchedClosingTag  Code = 3013
	MsgInvalidSelectorLabel Code = 3014

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
	IODecodeError   Code = 4003

	// Дубликаты и конфликты id
	DupInfo                   Code = 5000
	DupMessageID              Code = 5001
	DupConflictingTranslation Code = 5002

	// Проверка переводов
	VerInfo                Code = 6000
	VerMissingKey          Code = 6001
	VerExtraKey            Code = 6002
	VerStructuralMismatch  Code = 6003
	VerMissingSourceLocale Code = 6004
	VerInvalidLocaleName   Code = 6005

	// Конфигурация
	CfgInfo                Code = 7000
	CfgInvalidPattern      Code = 7001
	CfgUnknownFormatter    Code = 7002
	CfgUnknownPseudoLocale Code = 7003
	CfgInvalidFile         Code = 7004
	CfgInvalidIgnore       Code = 7005
)

var (
	codeDescription = map[Code]string{
		UnknownCode:               "Unknown error",
		SrcInfo:                   "Source information",
		SrcUnexpectedToken:        "Unexpected token",
		SrcUnterminatedString:     "Unterminated string literal",
		SrcUnterminatedTemplate:   "Unterminated template literal",
		SrcUnterminatedComment:    "Unterminated block comment",
		SrcUnterminatedRegex:      "Unterminated regular expression",
		SrcUnclosedDelimiter:      "Unclosed delimiter",
		SrcJSXMismatchedTag:       "Mismatched JSX closing tag",
		SrcJSXUnterminated:        "Unterminated JSX element",
		DscInfo:                   "Descriptor information",
		DscNonLiteralField:        "Descriptor field must be a string literal",
		DscInterpolatedField:      "Descriptor field must not contain interpolations",
		DscInvalidArgument:        "Message declaration expects an object literal",
		DscUnsupportedProperty:    "Unsupported property in message descriptor",
		DscMissingMessage:         "Message descriptor has no defaultMessage",
		DscInvalidPragma:          "Malformed pragma comment",
		MsgInfo:                   "Message information",
		MsgUnbalancedBrace:        "Unbalanced braces in message",
		MsgExpectArgumentName:     "Expected argument name",
		MsgUnknownArgumentType:    "Unknown argument type",
		MsgExpectArgumentStyle:    "Expected argument style",
		MsgExpectOptions:          "Expected selector options",
		MsgExpectSelectorBody:     "Expected '{' after selector label",
		MsgDuplicateSelector:      "Duplicate selector label",
		MsgMissingOther:           "Selector is missing the 'other' branch",
		MsgInvalidOffset:          "Invalid plural offset",
		MsgUnterminatedQuote:      "Unterminated quoted literal",
		MsgInvalidTag:             "Invalid tag",
		MsgUnclosedTag:            "Unclosed tag",
		MsgUnmatchedClosingTag:    "Unmatched closing tag",
		MsgInvalidSelectorLabel:   "Invalid selector label",
		IOLoadFileError:           "Failed to load file",
		IOWriteError:              "Failed to write file",
		IODecodeError:             "Failed to decode file",
		DupInfo:                   "Duplicate information",
		DupMessageID:              "Duplicate message id",
		DupConflictingTranslation: "Conflicting translation for message id",
		VerInfo:                   "Verification information",
		VerMissingKey:             "Missing translation key",
		VerExtraKey:               "Extra translation key",
		VerStructuralMismatch:     "Structural mismatch with source message",
		VerMissingSourceLocale:    "Source locale file not found",
		VerInvalidLocaleName:      "File name is not a valid locale tag",
		CfgInfo:                   "Configuration information",
		CfgInvalidPattern:         "Invalid id interpolation pattern",
		CfgUnknownFormatter:       "Unknown formatter",
		CfgUnknownPseudoLocale:    "Unknown pseudo-locale",
		CfgInvalidFile:            "Invalid configuration file",
		CfgInvalidIgnore:          "Invalid ignore pattern",
	}
)

// MessageCode maps an ICU syntax error kind onto its MSG code.
func MessageCode(kind uint8) Code {
	c := MsgInfo + Code(kind)
	if _, ok := codeDescription[c]; !ok {
		return MsgInfo
	}
	return c
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SRC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("DSC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MSG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("DUP%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("VER%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

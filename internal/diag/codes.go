package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1004

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2006
	SynUnclosedBracket    Code = 2008
	SynExpectSemicolon    Code = 2012
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectType         Code = 2202
	SynExpectExpression   Code = 2203
	SynExpectColon        Code = 2204

	// Семантические
	SemaInfo             Code = 3000
	SemaError            Code = 3001
	SemaDuplicateSymbol  Code = 3002
	SemaUnresolvedSymbol Code = 3005
	SemaUnresolvedFunc   Code = 3006
	SemaTypeMismatch     Code = 3010
	SemaArityMismatch    Code = 3011
	SemaMissingReturn    Code = 3012

	// Ввод-вывод
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Invalid character",
	LexBadNumber:          "Malformed numeric literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedParen:      "Unterminated expression",
	SynUnclosedBracket:    "Unterminated block",
	SynExpectSemicolon:    "Missing semicolon",
	SynUnexpectedTopLevel: "Unexpected top-level token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectType:         "Expected type",
	SynExpectExpression:   "Expected expression",
	SynExpectColon:        "Expected colon",
	SemaInfo:              "Semantic information",
	SemaError:             "Semantic error",
	SemaDuplicateSymbol:   "Redeclaration",
	SemaUnresolvedSymbol:  "Undeclared variable",
	SemaUnresolvedFunc:    "Undeclared function",
	SemaTypeMismatch:      "Type mismatch",
	SemaArityMismatch:     "Arity mismatch",
	SemaMissingReturn:     "Missing return",
	IOLoadFileError:       "I/O load file error",
}

// ID returns the stable code text, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a lexeme the lexer rejected (its error is reported separately).
	Invalid Kind = iota
	// EOF marks the end of input.
	EOF

	Ident  // identifier
	IntLit // integer literal fitting i32

	KwFunc   // func
	KwLet    // let
	KwIf     // if
	KwElse   // else
	KwWhile  // while
	KwReturn // return
	KwPrint  // print
	KwI32    // i32
	KwBool   // bool
	KwTrue   // true
	KwFalse  // false

	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	EqEq   // ==
	BangEq // !=
	Lt     // <
	Gt     // >
	LtEq   // <=
	GtEq   // >=
	AndAnd // &&
	OrOr   // ||
	Bang   // !
	Assign // =

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Arrow     // ->

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	KwFunc:    "KwFunc",
	KwLet:     "KwLet",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwWhile:   "KwWhile",
	KwReturn:  "KwReturn",
	KwPrint:   "KwPrint",
	KwI32:     "KwI32",
	KwBool:    "KwBool",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	EqEq:      "EqEq",
	BangEq:    "BangEq",
	Lt:        "Lt",
	Gt:        "Gt",
	LtEq:      "LtEq",
	GtEq:      "GtEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	Bang:      "Bang",
	Assign:    "Assign",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Comma:     "Comma",
	Colon:     "Colon",
	Semicolon: "Semicolon",
	Arrow:     "Arrow",
}

// отображение в исходном виде, для сообщений "expected X"
var kindLexemes = [kindCount]string{
	EOF:       "end of file",
	Ident:     "identifier",
	IntLit:    "integer literal",
	KwFunc:    "func",
	KwLet:     "let",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwReturn:  "return",
	KwPrint:   "print",
	KwI32:     "i32",
	KwBool:    "bool",
	KwTrue:    "true",
	KwFalse:   "false",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	EqEq:      "==",
	BangEq:    "!=",
	Lt:        "<",
	Gt:        ">",
	LtEq:      "<=",
	GtEq:      ">=",
	AndAnd:    "&&",
	OrOr:      "||",
	Bang:      "!",
	Assign:    "=",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Arrow:     "->",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe returns the user-facing spelling of k, e.g. "->" or "identifier".
func (k Kind) Describe() string {
	if k < kindCount && kindLexemes[k] != "" {
		return kindLexemes[k]
	}
	return "invalid token"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwFunc && k <= KwFalse
}

// IsType reports whether k names a primitive type.
func (k Kind) IsType() bool {
	return k == KwI32 || k == KwBool
}

// IsStatementStart reports whether k can only begin a statement.
// Used as a synchronisation point during error recovery.
func (k Kind) IsStatementStart() bool {
	switch k {
	case KwLet, KwIf, KwWhile, KwReturn, KwPrint:
		return true
	default:
		return false
	}
}

// IsOperator reports whether k is a prefix or infix operator.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Assign
}

// IsPunct reports whether k is a delimiter or separator.
func (k Kind) IsPunct() bool {
	return k >= LParen && k <= Arrow
}

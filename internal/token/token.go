package token

import (
	"lang/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) IsEOF() bool { return t.Kind == EOF }

// Is reports whether the token kind is one of kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

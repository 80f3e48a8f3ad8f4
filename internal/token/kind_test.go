package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"func":   KwFunc,
		"let":    KwLet,
		"if":     KwIf,
		"else":   KwElse,
		"while":  KwWhile,
		"return": KwReturn,
		"print":  KwPrint,
		"i32":    KwI32,
		"bool":   KwBool,
		"true":   KwTrue,
		"false":  KwFalse,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v,%v; want %v", lexeme, got, ok, want)
		}
	}
	for _, s := range []string{"Func", "fn", "int", "i64", "letx", ""} {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want not a keyword", s, k)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Invalid; k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
		if k != Invalid && kindLexemes[k] == "" {
			t.Errorf("kind %v has no lexeme", k)
		}
	}
	if Arrow.Describe() != "->" || Ident.Describe() != "identifier" {
		t.Errorf("Describe mismatch: %q %q", Arrow.Describe(), Ident.Describe())
	}
}

func TestKindClasses(t *testing.T) {
	for _, kind := range keywords {
		if !kind.IsKeyword() {
			t.Errorf("%v should be keyword", kind)
		}
		if kind.IsOperator() || kind.IsPunct() {
			t.Errorf("%v classified as operator/punct", kind)
		}
	}
	if !KwI32.IsType() || !KwBool.IsType() || KwLet.IsType() {
		t.Errorf("IsType mismatch")
	}
	for _, k := range []Kind{KwLet, KwIf, KwWhile, KwReturn, KwPrint} {
		if !k.IsStatementStart() {
			t.Errorf("%v should start a statement", k)
		}
	}
	if Ident.IsStatementStart() || LBracket.IsStatementStart() {
		t.Errorf("Ident/LBracket must not be sync points")
	}
	tok := Token{Kind: KwTrue}
	if !tok.IsLiteral() || !tok.Is(KwFalse, KwTrue) || tok.Is(Ident) {
		t.Errorf("Token helpers mismatch")
	}
}

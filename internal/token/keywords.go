package token

var keywords = map[string]Kind{
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

// LookupKeyword reports whether ident is reserved. Matching is case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

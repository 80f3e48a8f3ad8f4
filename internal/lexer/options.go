package lexer

import (
	"lang/internal/diag"
)

type Options struct {
	// Reporter receives every lexical error as a diagnostic. May be nil:
	// errors are still collected in Result.Errors.
	Reporter diag.Reporter
}

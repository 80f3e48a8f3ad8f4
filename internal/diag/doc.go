// Package diag defines the diagnostic model shared by the lexer, parser and
// semantic analyzer.
//
// Diagnostic is the display record:
//
//   - Severity – Info, Warning or Error.
//   - Code – numeric identifier grouped by stage (LEX1xxx, SYN2xxx, SEM3xxx, IO4xxx).
//   - Message – short human text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans ("first declared here").
//
// Stages keep their own typed error records; they convert them to Diagnostic
// only when handing them to a Reporter. Diagnostics are created once and never
// mutated afterwards. Package diag does no formatting beyond the single-line
// short form; rendering lives in internal/diagfmt.
package diag

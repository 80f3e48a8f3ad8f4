// Package token defines lexical token kinds and trivia for the lang front end.
// Invariants:
//   - Token.Text is the matched lexeme; Token.Span covers it exactly.
//   - Whitespace and // comments never appear in the token stream; they are
//     attached to the following token as leading Trivia.
//   - A token stream produced by the lexer ends with exactly one EOF token.
//   - i32 and bool are keywords, not identifiers.
package token

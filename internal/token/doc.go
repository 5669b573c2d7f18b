// Package token defines lexical token kinds for the mica front end.
// Invariants:
//   - Token.Span matches Text exactly (Begin..End), except Comment and
//     StringLit whose Text drops the trailing newline / the quotes.
//   - Exactly one EOF token per lexing run, positioned at the source length,
//     with empty Text.
//   - Sized numeric type names (int32, bfloat16, ...) ARE keywords here,
//     unlike identifiers; the grammar layer decides which of them it accepts.
package token

// Package diag carries diagnostics between the front-end phases and the CLI.
//
// Two taxonomies live here. Lexical codes (LEX1xxx) never stop anything:
// the lexer degrades anomalies to Unknown tokens and reports them as
// warnings. Syntax codes (SYN2xxx) are fatal to the parse that raised them.
package diag

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown is the catch-all token for byte runs no other rule accepts.
	// The lexer never fails: malformed input degrades to one Unknown token
	// spanning to the end of the input.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a maximal run of whitespace characters.
	Whitespace
	// Comment is a '#' line comment, newline excluded.
	Comment

	// Ident represents an identifier token.
	Ident
	// IntLit represents the integer literal token.
	IntLit
	// StringLit represents the string literal token (quotes excluded).
	StringLit

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwFn represents the 'fn' keyword.
	KwFn // fn

	// KwInt1 represents the 'int1' type keyword.
	KwInt1 // int1
	// KwInt2 represents the 'int2' type keyword.
	KwInt2 // int2
	// KwInt4 represents the 'int4' type keyword.
	KwInt4 // int4
	// KwInt8 represents the 'int8' type keyword.
	KwInt8 // int8
	// KwInt16 represents the 'int16' type keyword.
	KwInt16 // int16
	// KwInt32 represents the 'int32' type keyword.
	KwInt32 // int32
	// KwInt64 represents the 'int64' type keyword.
	KwInt64 // int64
	// KwFloat16 represents the 'float16' type keyword.
	KwFloat16 // float16
	// KwBFloat16 represents the 'bfloat16' type keyword.
	KwBFloat16 // bfloat16
	// KwFloat32 represents the 'float32' type keyword.
	KwFloat32 // float32
	// KwFloat64 represents the 'float64' type keyword.
	KwFloat64 // float64

	// Assign represents the assign operator token.
	Assign // =
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Arrow represents the arrow token.
	Arrow // ->
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

var kindNames = [...]string{
	Unknown:    "Unknown",
	EOF:        "EOF",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Ident:      "Ident",
	IntLit:     "IntLit",
	StringLit:  "StringLit",
	KwLet:      "let",
	KwMut:      "mut",
	KwFn:       "fn",
	KwInt1:     "int1",
	KwInt2:     "int2",
	KwInt4:     "int4",
	KwInt8:     "int8",
	KwInt16:    "int16",
	KwInt32:    "int32",
	KwInt64:    "int64",
	KwFloat16:  "float16",
	KwBFloat16: "bfloat16",
	KwFloat32:  "float32",
	KwFloat64:  "float64",
	Assign:     "Assign",
	Colon:      "Colon",
	Semicolon:  "Semicolon",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Arrow:      "Arrow",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

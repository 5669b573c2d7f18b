package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"mut":      KwMut,
	"fn":       KwFn,
	"int1":     KwInt1,
	"int2":     KwInt2,
	"int4":     KwInt4,
	"int8":     KwInt8,
	"int16":    KwInt16,
	"int32":    KwInt32,
	"int64":    KwInt64,
	"float16":  KwFloat16,
	"bfloat16": KwBFloat16,
	"float32":  KwFloat32,
	"float64":  KwFloat64,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

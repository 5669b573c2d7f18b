package driver

import (
	"mica/internal/ast"
	"mica/internal/diag"
	"mica/internal/parser"
	"mica/internal/source"
	"mica/internal/token"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Program ast.ProgramID
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error // первая синтаксическая ошибка, nil при успехе
}

// Parse загружает файл, лексирует его и строит программу.
// Синтаксическая ошибка не ошибка I/O: она возвращается в ParseResult.Err,
// а диагностика уже лежит в Bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics), nil
}

// ParseVirtual разбирает содержимое из памяти.
func ParseVirtual(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	res := tokenizeFile(fs, fileID, maxDiagnostics)
	bag.Merge(res.Bag)

	builder := ast.NewBuilder(ast.Hints{}, nil)
	program, err := parser.ParseProgram(builder, res.Tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Program: program,
		Tokens:  res.Tokens,
		Bag:     bag,
		Err:     err,
	}
}

// Package driver wires the lexer and parser into whole-file operations:
// tokenize a file, parse it into a declaration tree, extract public
// headers, and fan the parser out over a directory. The CLI is a thin
// shell over this package.
package driver

import (
	"modmap/internal/diag"
	"modmap/internal/lexer"
	"modmap/internal/source"
	"modmap/internal/token"
)

// TokenizeResult carries the full token stream of one file plus any
// lexical diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and scans it to EOF. Lexical errors land in the
// bag; the stream still runs to completion so every recoverable token
// is present.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeText is Tokenize over an in-memory buffer.
func TokenizeText(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

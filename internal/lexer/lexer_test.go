package lexer_test

import (
	"testing"

	"modmap/internal/diag"
	"modmap/internal/lexer"
	"modmap/internal/source"
	"modmap/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) errorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.modulemap", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return kinds
		}
		kinds = append(kinds, tok.Kind)
	}
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	kinds := collectKinds(lx)

	if len(kinds) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\nkinds: %v\nerrors: %d",
			len(expected), len(kinds), input, kinds, reporter.errorCount())
	}
	for i, k := range kinds {
		if k != expected[i] {
			t.Errorf("token %d: expected %v, got %v (input %q)", i, expected[i], k, input)
		}
	}
}

func TestTokenizeModuleHeader(t *testing.T) {
	expectTokens(t, `module Foo { header "Foo.h" }`, []token.Kind{
		token.KwModule, token.Ident, token.LBrace,
		token.KwHeader, token.StringLit, token.RBrace,
	})
}

func TestTokenizeQualifiers(t *testing.T) {
	expectTokens(t, `explicit framework module Foo.Bar [system] {}`, []token.Kind{
		token.KwExplicit, token.KwFramework, token.KwModule,
		token.Ident, token.Dot, token.Ident,
		token.LBracket, token.Ident, token.RBracket,
		token.LBrace, token.RBrace,
	})
}

func TestTokenizeWildcardAndBang(t *testing.T) {
	expectTokens(t, `explicit module * { requires !cplusplus }`, []token.Kind{
		token.KwExplicit, token.KwModule, token.Star,
		token.LBrace, token.KwRequires, token.Bang, token.Ident, token.RBrace,
	})
}

func TestTokenizeComments(t *testing.T) {
	input := "// line comment\nmodule /* inline */ Foo {\n/* multi\nline */ }"
	expectTokens(t, input, []token.Kind{
		token.KwModule, token.Ident, token.LBrace, token.RBrace,
	})
}

func TestTokenizeKeywordsVsIdents(t *testing.T) {
	lx, _ := makeTestLexer("header headers Header _header")
	kinds := collectKinds(lx)
	want := []token.Kind{token.KwHeader, token.Ident, token.Ident, token.Ident}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], k)
		}
	}
}

func TestTokenizeDigitRun(t *testing.T) {
	// header attribute blocks carry numeric values
	expectTokens(t, `{ size 1234 }`, []token.Kind{
		token.LBrace, token.Ident, token.Ident, token.RBrace,
	})
}

func TestStringLiteralText(t *testing.T) {
	lx, reporter := makeTestLexer(`"dir/Foo Bar.h"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %v, want StringLit", tok.Kind)
	}
	if tok.Text != `"dir/Foo Bar.h"` {
		t.Errorf("text = %q", tok.Text)
	}
	if reporter.errorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.diagnostics)
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	lx, reporter := makeTestLexer(`"a\"b\\c"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %v, want StringLit", tok.Kind)
	}
	if tok.Text != `"a\"b\\c"` {
		t.Errorf("text = %q", tok.Text)
	}
	if reporter.errorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.diagnostics)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`header "Foo.h`)
	lx.Next() // header
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if reporter.errorCount() != 1 {
		t.Fatalf("error count = %d, want 1", reporter.errorCount())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v, want LexUnterminatedString", reporter.diagnostics[0].Code)
	}
}

func TestNewlineInString(t *testing.T) {
	lx, reporter := makeTestLexer("\"Foo\n\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if reporter.errorCount() != 1 || reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("module Foo {} /* trailing")
	collectKinds(lx)
	if reporter.errorCount() != 1 {
		t.Fatalf("error count = %d, want 1", reporter.errorCount())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("code = %v, want LexUnterminatedBlockComment", reporter.diagnostics[0].Code)
	}
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("module Foo; {}")
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	if reporter.errorCount() != 1 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %v", reporter.diagnostics)
	}
	// lexing continues past the bad byte
	if kinds[len(kinds)-1] != token.RBrace {
		t.Errorf("kinds = %v, want trailing RBrace", kinds)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() #%d = %v, want EOF", i, tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("module Foo")
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Errorf("Peek = %+v, Next = %+v", p, n)
	}
	if lx.Next().Kind != token.Ident {
		t.Error("expected Ident after consuming module")
	}
}

func TestDeterministicTokens(t *testing.T) {
	input := `module Foo { header "a.h" /*c*/ export * }`
	first, _ := makeTestLexer(input)
	second, _ := makeTestLexer(input)
	for {
		a, b := first.Next(), second.Next()
		if a != b {
			t.Fatalf("token streams diverge: %+v vs %+v", a, b)
		}
		if a.Kind == token.EOF {
			break
		}
	}
}

func TestSpansMatchText(t *testing.T) {
	input := `module Foo { header "Foo.h" }`
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.modulemap", []byte(input))
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{})

	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		got := input[tok.Span.Start:tok.Span.End]
		if got != tok.Text {
			t.Errorf("span slice %q != token text %q", got, tok.Text)
		}
	}
}

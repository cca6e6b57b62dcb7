package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{"no carriage returns", "module A {}\n", "module A {}\n", false},
		{"crlf pairs", "module A {\r\n}\r\n", "module A {\n}\n", true},
		{"lone cr preserved", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\r\n", "a\nb\rc\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("module A {}")...)
	got, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if !bytes.Equal(got, []byte("module A {}")) {
		t.Errorf("content = %q", got)
	}

	got, had = removeBOM([]byte("module A {}"))
	if had {
		t.Error("unexpected BOM detection")
	}
	if !bytes.Equal(got, []byte("module A {}")) {
		t.Errorf("content = %q", got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n\nef"
	idx := buildLineIndex([]byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline ends line 1
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}}, // empty line
		{7, LineCol{4, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	if got := toLineCol(nil, 5); got != (LineCol{1, 6}) {
		t.Errorf("toLineCol = %v, want {1 6}", got)
	}
}

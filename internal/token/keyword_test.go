package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident  string
		want   Kind
		wantOK bool
	}{
		{"module", KwModule, true},
		{"explicit", KwExplicit, true},
		{"framework", KwFramework, true},
		{"extern", KwExtern, true},
		{"private", KwPrivate, true},
		{"textual", KwTextual, true},
		{"umbrella", KwUmbrella, true},
		{"header", KwHeader, true},
		{"exclude", KwExclude, true},
		{"export", KwExport, true},
		{"export_as", KwExportAs, true},
		{"requires", KwRequires, true},
		{"link", KwLink, true},
		{"use", KwUse, true},
		{"config_macros", KwConfigMacros, true},
		{"conflict", KwConflict, true},
		{"Module", 0, false}, // case-sensitive
		{"headers", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		k, ok := LookupKeyword(tt.ident)
		if ok != tt.wantOK {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.wantOK)
			continue
		}
		if ok && k != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.want)
		}
	}
}

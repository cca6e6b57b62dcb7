package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modmap/internal/ast"
)

var (
	moduleStyle = lipgloss.NewStyle().Bold(true)
	flagStyle   = lipgloss.NewStyle().Faint(true)
	pathStyle   = lipgloss.NewStyle().Underline(true)
)

// FormatDeclsPretty writes the declaration tree with two-space
// indentation per nesting level.
func FormatDeclsPretty(w io.Writer, decls []ast.Decl, styled bool) error {
	for _, d := range decls {
		writeDeclPretty(w, d, 0, styled)
	}
	return nil
}

func writeDeclPretty(w io.Writer, d ast.Decl, depth int, styled bool) {
	indent := strings.Repeat("  ", depth)
	switch d := d.(type) {
	case *ast.Module:
		name := d.Name
		if styled {
			name = moduleStyle.Render(name)
		}
		flags := moduleFlags(d)
		if styled && flags != "" {
			flags = flagStyle.Render(flags)
		}
		fmt.Fprintf(w, "%smodule %s%s\n", indent, name, flags)
		for _, m := range d.Members {
			writeDeclPretty(w, m, depth+1, styled)
		}
	case *ast.Header:
		path := d.Path
		if styled {
			path = pathStyle.Render(path)
		}
		fmt.Fprintf(w, "%s%sheader %s\n", indent, headerQualifiers(d), path)
	case *ast.Opaque:
		text := d.Text
		if styled {
			text = flagStyle.Render(text)
		}
		fmt.Fprintf(w, "%s%s\n", indent, text)
	}
}

func moduleFlags(m *ast.Module) string {
	var flags []string
	if m.IsExplicit {
		flags = append(flags, "explicit")
	}
	if m.IsFramework {
		flags = append(flags, "framework")
	}
	if m.IsSystem {
		flags = append(flags, "system")
	}
	if m.IsExtern {
		flags = append(flags, "extern -> "+m.ExternPath)
	}
	if !m.HasBody && !m.IsExtern {
		flags = append(flags, "forward")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ", ") + "]"
}

func headerQualifiers(h *ast.Header) string {
	var quals []string
	if h.Private {
		quals = append(quals, "private")
	}
	if h.Textual {
		quals = append(quals, "textual")
	}
	if h.Umbrella {
		quals = append(quals, "umbrella")
	}
	if len(quals) == 0 {
		return ""
	}
	return strings.Join(quals, " ") + " "
}

// DeclJSON is the JSON shape of one declaration.
type DeclJSON struct {
	Kind        string     `json:"kind"`
	Name        string     `json:"name,omitempty"`
	IsExplicit  bool       `json:"explicit,omitempty"`
	IsFramework bool       `json:"framework,omitempty"`
	IsSystem    bool       `json:"system,omitempty"`
	IsExtern    bool       `json:"extern,omitempty"`
	ExternPath  string     `json:"extern_path,omitempty"`
	Path        string     `json:"path,omitempty"`
	Private     bool       `json:"private,omitempty"`
	Textual     bool       `json:"textual,omitempty"`
	Umbrella    bool       `json:"umbrella,omitempty"`
	Keyword     string     `json:"keyword,omitempty"`
	Text        string     `json:"text,omitempty"`
	Members     []DeclJSON `json:"members,omitempty"`
}

// FormatDeclsJSON writes the declaration tree as indented JSON.
func FormatDeclsJSON(w io.Writer, decls []ast.Decl) error {
	out := make([]DeclJSON, 0, len(decls))
	for _, d := range decls {
		out = append(out, declToJSON(d))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func declToJSON(d ast.Decl) DeclJSON {
	switch d := d.(type) {
	case *ast.Module:
		out := DeclJSON{
			Kind:        d.Kind().String(),
			Name:        d.Name,
			IsExplicit:  d.IsExplicit,
			IsFramework: d.IsFramework,
			IsSystem:    d.IsSystem,
			IsExtern:    d.IsExtern,
			ExternPath:  d.ExternPath,
		}
		for _, m := range d.Members {
			out.Members = append(out.Members, declToJSON(m))
		}
		return out
	case *ast.Header:
		return DeclJSON{
			Kind:     d.Kind().String(),
			Path:     d.Path,
			Private:  d.Private,
			Textual:  d.Textual,
			Umbrella: d.Umbrella,
		}
	case *ast.Opaque:
		return DeclJSON{
			Kind:    d.Kind().String(),
			Keyword: d.Keyword,
			Text:    d.Text,
		}
	}
	return DeclJSON{Kind: "decl(?)"}
}

package glossary

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"text/template"
)

// Title is used for both the document title and the page heading.
const Title = "Ubiquitous Language"

// The table is rendered with text/template so that values are inserted
// verbatim unless WithEscapeHTML is given.
const pageTemplate = `<html>
  <head>
    <title>{{ .Title }}</title>
  </head>
  <body>
    <h1>{{ .Title }}</h1>
    <table border='1'>
      <tr><th>Ubiquitous</th><th>Class Name</th><th>Context</th><th>Description</th></tr>
{{- range .Rows }}
      <tr>
        <td>{{ cell .Term }}</td>
        <td>{{ cell .Identifier }}</td>
        <td>{{ cell .Context }}</td>
        <td>{{ cell .Description }}</td>
      </tr>
{{- end }}
    </table>
  </body>
</html>
`

type renderOptions struct {
	escape bool
}

// RenderOption tunes the generated document.
type RenderOption func(*renderOptions)

// WithEscapeHTML escapes HTML-significant characters in cell values.
func WithEscapeHTML() RenderOption {
	return func(o *renderOptions) { o.escape = true }
}

type page struct {
	Title string
	Rows  []Row
}

// Build renders the glossary document into memory.
func Build(records []Record, opts ...RenderOption) ([]byte, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	cell := func(s string) string { return s }
	if o.escape {
		cell = html.EscapeString
	}

	tmpl, err := template.New("glossary").
		Funcs(template.FuncMap{"cell": cell}).
		Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse glossary template: %w", err)
	}

	p := page{Title: Title, Rows: make([]Row, 0, len(records))}
	for _, r := range records {
		p.Rows = append(p.Rows, r.Row())
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render glossary: %w", err)
	}
	return buf.Bytes(), nil
}

// Render writes the glossary document to w in a single write.
func Render(w io.Writer, records []Record, opts ...RenderOption) error {
	doc, err := Build(records, opts...)
	if err != nil {
		return err
	}
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("write glossary: %w", err)
	}
	return nil
}

// WriteFile renders the glossary to path, creating or truncating it. The
// parent directory must already exist.
func WriteFile(path string, records []Record, opts ...RenderOption) error {
	doc, err := Build(records, opts...)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("create glossary %s: %w", path, err)
	}
	if _, err := f.Write(doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("write glossary %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close glossary %s: %w", path, err)
	}
	return nil
}

// WriteFileAtomic is like WriteFile but writes to a temporary file in the
// destination directory and renames it over path on success, so an existing
// glossary is never left half written.
func WriteFileAtomic(path string, records []Record, opts ...RenderOption) error {
	doc, err := Build(records, opts...)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp glossary for %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write glossary %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close glossary %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod glossary %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename glossary %s: %w", path, err)
	}
	return nil
}

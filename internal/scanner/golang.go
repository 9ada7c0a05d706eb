package scanner

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/example/ubiquitous-gen/internal/glossary"
)

// GoScanner reads Go sources and emits the doc comment of every top-level
// type declaration.
type GoScanner struct {
	fset *token.FileSet
}

// NewGoScanner allocates a new instance.
func NewGoScanner() *GoScanner {
	return &GoScanner{fset: token.NewFileSet()}
}

// Lang implements Scanner.
func (g *GoScanner) Lang() string { return "go" }

// Accept implements Scanner. Test files are ignored.
func (g *GoScanner) Accept(path string) bool {
	return strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go")
}

// ScanFile implements Scanner.
func (g *GoScanner) ScanFile(path string, src []byte) ([]glossary.RawDoc, error) {
	file, err := parser.ParseFile(g.fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var docs []glossary.RawDoc
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			docs = append(docs, glossary.RawDoc{
				Identifier: ts.Name.Name,
				Comment:    typeDoc(gd, ts),
			})
		}
	}
	return docs, nil
}

// typeDoc prefers the comment on the spec itself; an ungrouped declaration
// carries its comment on the GenDecl instead.
func typeDoc(gd *ast.GenDecl, ts *ast.TypeSpec) string {
	if ts.Doc != nil {
		return ts.Doc.Text()
	}
	if gd.Doc != nil && !gd.Lparen.IsValid() {
		return gd.Doc.Text()
	}
	return ""
}

package scanner

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/example/ubiquitous-gen/internal/glossary"
)

// classDeclRe matches class-like declarations at the start of a line,
// including modifiers such as `final` or `abstract readonly`.
var classDeclRe = regexp.MustCompile(
	`(?m)^[ \t]*(?:(?:abstract|final|readonly)[ \t]+)*(?:class|interface|trait|enum)[ \t]+([A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*)`,
)

// PHPScanner reads PHP sources and pairs each class, interface, trait and
// enum with the docblock directly above it.
type PHPScanner struct{}

// NewPHPScanner allocates a new instance.
func NewPHPScanner() *PHPScanner {
	return &PHPScanner{}
}

// Lang implements Scanner.
func (p *PHPScanner) Lang() string { return "php" }

// Accept implements Scanner.
func (p *PHPScanner) Accept(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".php")
}

// ScanFile implements Scanner. Declarations without a docblock are returned
// with an empty comment.
func (p *PHPScanner) ScanFile(_ string, src []byte) ([]glossary.RawDoc, error) {
	text := string(src)

	var docs []glossary.RawDoc
	for _, m := range classDeclRe.FindAllStringSubmatchIndex(text, -1) {
		docs = append(docs, glossary.RawDoc{
			Identifier: text[m[2]:m[3]],
			Comment:    docBlockBefore(text[:m[0]]),
		})
	}
	return docs, nil
}

// docBlockBefore returns the /** ... */ block ending right before the end of
// src. Only blank lines, attributes and line comments may sit between the
// block and the declaration.
func docBlockBefore(src string) string {
	end := strings.LastIndex(src, "*/")
	if end < 0 {
		return ""
	}
	if !onlyAttributes(src[end+2:]) {
		return ""
	}

	open := strings.LastIndex(src[:end], "/*")
	if open < 0 || !strings.HasPrefix(src[open:], "/**") {
		return ""
	}
	return src[open : end+2]
}

// onlyAttributes reports whether gap holds nothing but whitespace, `//` or
// `#` line comments and attributes, which may span several lines.
func onlyAttributes(gap string) bool {
	depth := 0
	for _, line := range strings.Split(gap, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case depth > 0:
			depth += bracketDelta(line)
		case line == "":
		case strings.HasPrefix(line, "#["):
			depth = bracketDelta(line)
		case strings.HasPrefix(line, "//"), strings.HasPrefix(line, "#"):
		default:
			return false
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

// bracketDelta counts opening minus closing square brackets in line,
// ignoring those inside quoted strings.
func bracketDelta(line string) int {
	delta := 0
	var quote rune
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == '\\' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '[':
			delta++
		case r == ']':
			delta--
		}
	}
	return delta
}

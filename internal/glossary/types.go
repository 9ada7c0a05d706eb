// Package glossary turns documentation comments into ubiquitous language
// records and renders them as an HTML glossary table.
package glossary

// RawDoc is a documented identifier as produced by a source scanner.
type RawDoc struct {
	Identifier string // class or type name
	Comment    string // raw doc comment, markers included
}

// Record holds the glossary tags found for a single identifier.
// A nil field means the tag was not present in the comment.
type Record struct {
	Identifier  string
	Term        *string // @ubiquitous
	Context     *string // @context
	Description *string // @description
}

// IsEmpty reports whether no glossary tag was found.
func (r Record) IsEmpty() bool {
	return r.Term == nil && r.Context == nil && r.Description == nil
}

// Row is the table view of a Record.
type Row struct {
	Term        string
	Identifier  string
	Context     string
	Description string
}

// Row projects the record onto a table row, absent tags become "".
func (r Record) Row() Row {
	return Row{
		Term:        deref(r.Term),
		Identifier:  r.Identifier,
		Context:     deref(r.Context),
		Description: deref(r.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

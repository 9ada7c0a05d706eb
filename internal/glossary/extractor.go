package glossary

import "strings"

// Tag markers recognised inside doc comments.
const (
	TagUbiquitous  = "@ubiquitous"
	TagContext     = "@context"
	TagDescription = "@description"
)

// tagRule binds a marker to the record field it fills.
type tagRule struct {
	marker string
	set    func(r *Record, val string)
}

// tagRules is scanned in order for every line; the first marker found wins.
var tagRules = []tagRule{
	{TagUbiquitous, func(r *Record, val string) { r.Term = &val }},
	{TagContext, func(r *Record, val string) { r.Context = &val }},
	{TagDescription, func(r *Record, val string) { r.Description = &val }},
}

// Extract converts raw docs into glossary records. Docs without any tag are
// dropped; the order of the remaining records follows the input.
func Extract(docs []RawDoc) []Record {
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		if rec, ok := ExtractOne(doc); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ExtractOne parses a single doc comment. It returns false when the comment
// carries no glossary tag.
func ExtractOne(doc RawDoc) (Record, bool) {
	rec := Record{Identifier: doc.Identifier}

	comment := strings.TrimSpace(doc.Comment)
	if comment == "" {
		return rec, false
	}

	for _, line := range strings.Split(comment, "\n") {
		applyLine(&rec, strings.TrimSpace(line))
	}

	return rec, !rec.IsEmpty()
}

// applyLine sets at most one field from line. A marker at the very end of
// the line sets the field to "".
func applyLine(rec *Record, line string) {
	for _, rule := range tagRules {
		pos := strings.Index(line, rule.marker)
		if pos < 0 {
			continue
		}
		rule.set(rec, strings.TrimSpace(line[pos+len(rule.marker):]))
		return
	}
}

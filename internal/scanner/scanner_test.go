package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/ubiquitous-gen/internal/glossary"
)

const fixtures = "../../testdata"

func identifiers(docs []glossary.RawDoc) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Identifier)
	}
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		lang     string
		wantLang string
		wantErr  bool
	}{
		{lang: "php", wantLang: "php"},
		{lang: "PHP", wantLang: "php"},
		{lang: "go", wantLang: "go"},
		{lang: "golang", wantLang: "go"},
		{lang: "rust", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			s, err := New(tt.lang)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported language")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, s.Lang())
		})
	}
}

func TestWalkPHPFixtures(t *testing.T) {
	docs, err := Walk([]string{filepath.Join(fixtures, "php")}, NewPHPScanner(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Order", "OrderNumberGenerator", "OrderLine", "OrderRepository", "OrderStatus", "User",
	}, identifiers(docs))

	records := glossary.Extract(docs)
	require.Len(t, records, 4)
	assert.Equal(t, glossary.Row{
		Term:        "Order",
		Identifier:  "Order",
		Context:     "Sales",
		Description: "A customer's request to buy items",
	}, records[0].Row())
	assert.Equal(t, "Order Line", *records[1].Term)
	assert.Equal(t, glossary.Row{Identifier: "OrderStatus", Context: "Sales"}, records[2].Row())
	assert.Equal(t, glossary.Row{
		Term:        "ユビキタス",
		Identifier:  "User",
		Context:     "ユーザー",
		Description: "ユーザー情報",
	}, records[3].Row())
}

func TestWalkExclude(t *testing.T) {
	docs, err := Walk([]string{filepath.Join(fixtures, "php")}, NewPHPScanner(), []string{"Order"})
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, identifiers(docs))
}

func TestWalkSingleFile(t *testing.T) {
	path := filepath.Join(fixtures, "php", "Domain", "User.php")
	docs, err := Walk([]string{path}, NewPHPScanner(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"User"}, identifiers(docs))
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk([]string{"/nonexistent/src"}, NewPHPScanner(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWalkGoFixtures(t *testing.T) {
	docs, err := Walk([]string{filepath.Join(fixtures, "go")}, NewGoScanner(), nil)
	require.NoError(t, err)

	// broken.go fails to parse and is skipped, test files are ignored.
	assert.Equal(t, []string{"Invoice", "Credit", "ledgerEntry", "Amount"}, identifiers(docs))

	records := glossary.Extract(docs)
	require.Len(t, records, 2)
	assert.Equal(t, glossary.Row{
		Term:        "Invoice",
		Identifier:  "Invoice",
		Context:     "Billing",
		Description: "Request for payment",
	}, records[0].Row())
	assert.Equal(t, glossary.Row{Term: "Credit Note", Identifier: "Credit"}, records[1].Row())
}

func TestWalkSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	hidden := filepath.Join(root, ".cache")
	require.NoError(t, os.MkdirAll(hidden, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hidden, "A.php"), []byte("<?php\n/** @context X */\nclass A {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "B.php"), []byte("<?php\nclass B {}\n"), 0644))

	docs, err := Walk([]string{root}, NewPHPScanner(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, identifiers(docs))
}

// Package signals extracts deterministic structural and content signals
// from raw resume text. No LLMs are involved; identical text always
// produces identical signals.
package signals

import "sort"

// defaultSkillTerms is the closed vocabulary of recognized skill terms.
// Matching is case-insensitive substring containment, so multi-word
// entries like "machine learning" match as phrases.
var defaultSkillTerms = []string{
	"python",
	"java",
	"javascript",
	"typescript",
	"sql",
	"mongodb",
	"postgresql",
	"docker",
	"kubernetes",
	"aws",
	"azure",
	"gcp",
	"fastapi",
	"django",
	"flask",
	"react",
	"node.js",
	"git",
	"linux",
	"machine learning",
	"data analysis",
}

// Catalog is the canonical skill vocabulary used for both skill extraction
// and keyword matching. It is injected into the Extractor so the vocabulary
// can evolve without touching scoring logic.
type Catalog struct {
	terms []string
}

// NewCatalog creates a catalog from the given terms. Terms are stored in
// sorted order so extraction output is independent of declaration order.
func NewCatalog(terms []string) *Catalog {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)
	return &Catalog{terms: sorted}
}

// DefaultCatalog returns the built-in canonical skill vocabulary.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultSkillTerms)
}

// Terms returns a copy of the catalog terms in sorted order.
func (c *Catalog) Terms() []string {
	out := make([]string, len(c.terms))
	copy(out, c.terms)
	return out
}

// Len returns the number of terms in the catalog.
func (c *Catalog) Len() int {
	return len(c.terms)
}

package retriever

import (
	"sort"
	"strings"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/internal/knowledge"
	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
)

// Options tunes a search. The zero value is not usable; use DefaultOptions.
type Options struct {
	// Limit caps the number of returned matches.
	Limit int
	// DedupeExpansion removes duplicate terms from the expanded query before
	// scoring. Off by default: overlapping synonym matches then contribute
	// once per occurrence, which inflates scores for heavily-expanded
	// queries. That inflation is the established ranking behaviour, so the
	// corrected mode is opt-in.
	DedupeExpansion bool
}

func DefaultOptions() Options { return Options{Limit: 3} }

// Expand lower-cases and tokenises the query, then widens it with the synonym
// table: a phrase fires when any raw term is a substring of the phrase or the
// phrase is a substring of the whole query. Duplicates are kept unless dedupe
// is requested.
func Expand(query string, synonyms []knowledge.SynonymEntry, dedupe bool) []string {
	queryLower := strings.ToLower(query)
	raw := strings.Fields(queryLower)

	expanded := make([]string, 0, len(raw))
	expanded = append(expanded, raw...)
	for _, term := range raw {
		for _, entry := range synonyms {
			if strings.Contains(entry.Phrase, term) || strings.Contains(queryLower, entry.Phrase) {
				expanded = append(expanded, entry.Synonyms...)
			}
		}
	}

	if !dedupe {
		return expanded
	}
	seen := make(map[string]bool, len(expanded))
	out := expanded[:0]
	for _, t := range expanded {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// score weights substring hits: content 2, category 3, id 1. Every occurrence
// of a repeated expanded term counts separately.
func score(doc models.Document, terms []string) int {
	content := strings.ToLower(doc.Content)
	category := strings.ToLower(doc.Category)
	total := 0
	for _, term := range terms {
		if strings.Contains(content, term) {
			total += 2
		}
		if strings.Contains(category, term) {
			total += 3
		}
		if strings.Contains(doc.ID, term) {
			total++
		}
	}
	return total
}

// Search ranks every document in the store against the expanded query and
// returns up to opts.Limit matches by descending score. Zero-score documents
// are dropped; an empty query therefore yields no matches. Ties keep store
// order (stable sort).
func Search(query string, store *knowledge.Store, opts Options) []models.ScoredMatch {
	terms := Expand(query, store.Synonyms(), opts.DedupeExpansion)

	var results []models.ScoredMatch
	for _, doc := range store.Documents() {
		if s := score(doc, terms); s > 0 {
			results = append(results, models.ScoredMatch{Document: doc, Score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}

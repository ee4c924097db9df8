package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
)

// Store holds the document corpus and the synonym table. Both are fixed at
// construction time; a Store is safe for concurrent readers.
type Store struct {
	docs     []models.Document
	synonyms []SynonymEntry
}

// SynonymEntry maps a trigger phrase to the terms it expands a query with.
type SynonymEntry struct {
	Phrase   string   `json:"phrase"`
	Synonyms []string `json:"synonyms"`
}

// Stats is the projection served by the knowledge endpoint.
type Stats struct {
	TotalDocuments int      `json:"total_documents"`
	Categories     []string `json:"categories"`
	Sources        []string `json:"sources"`
}

// New builds a store over the built-in company corpus and synonym table.
func New() *Store {
	return &Store{docs: defaultDocuments(), synonyms: defaultSynonyms()}
}

// NewFromFile builds the default store and overlays documents from a JSON
// file: entries whose id matches an existing document replace it, new ids are
// appended in file order.
func NewFromFile(path string) (*Store, error) {
	s := New()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var overlay []models.Document
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse knowledge file: %w", err)
	}
	for _, doc := range overlay {
		if doc.ID == "" {
			return nil, fmt.Errorf("knowledge file: document without id")
		}
		replaced := false
		for i := range s.docs {
			if s.docs[i].ID == doc.ID {
				s.docs[i] = doc
				replaced = true
				break
			}
		}
		if !replaced {
			s.docs = append(s.docs, doc)
		}
	}
	return s, nil
}

// Documents returns the corpus in its deterministic load order. Callers must
// not modify the returned slice.
func (s *Store) Documents() []models.Document { return s.docs }

// Synonyms returns the synonym table.
func (s *Store) Synonyms() []SynonymEntry { return s.synonyms }

// Stats summarises the corpus. Distinct categories and sources keep
// first-appearance order.
func (s *Store) Stats() Stats {
	st := Stats{TotalDocuments: len(s.docs), Categories: []string{}, Sources: []string{}}
	seenCat := map[string]bool{}
	seenSrc := map[string]bool{}
	for _, d := range s.docs {
		if !seenCat[d.Category] {
			seenCat[d.Category] = true
			st.Categories = append(st.Categories, d.Category)
		}
		if !seenSrc[d.Source] {
			seenSrc[d.Source] = true
			st.Sources = append(st.Sources, d.Source)
		}
	}
	return st
}

package models

// Document is a single knowledge-base entry. Documents are loaded once at
// startup and never mutated afterwards.
type Document struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// ScoredMatch pairs a document with its relevance score for one query.
type ScoredMatch struct {
	Document Document `json:"document"`
	Score    int      `json:"score"`
}

// Topic describes one newsletter subject the generator iterates over.
type Topic struct {
	Topic    string `json:"topic" mapstructure:"topic"`
	Category string `json:"category" mapstructure:"category"`
}

// Newsletter is one generated (or fallback) newsletter entry.
type Newsletter struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Answer is the outcome of one chat turn: the response text plus the source
// labels of the documents that informed it, in match order.
type Answer struct {
	Text    string   `json:"text"`
	Sources []string `json:"sources"`
}

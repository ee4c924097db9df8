package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStats(t *testing.T) {
	store := New()
	stats := store.Stats()

	if stats.TotalDocuments != 7 {
		t.Fatalf("expected 7 documents, got %d", stats.TotalDocuments)
	}
	if len(stats.Categories) != 7 {
		t.Fatalf("expected 7 distinct categories, got %v", stats.Categories)
	}
	if stats.Categories[0] != "leave" || stats.Categories[6] != "tickets" {
		t.Fatalf("categories not in load order: %v", stats.Categories)
	}
	if len(stats.Sources) != 7 {
		t.Fatalf("expected 7 distinct sources, got %v", stats.Sources)
	}
}

func TestNewFromFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.json")
	overlay := `[
		{"id": "leave_policy", "content": "Updated leave content.", "source": "HR_Policy_2025.pdf", "category": "leave"},
		{"id": "parking", "content": "Parking spots are assigned by floor.", "source": "Facilities_Guide.pdf", "category": "facilities"}
	]`
	if err := os.WriteFile(path, []byte(overlay), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile: %v", err)
	}

	if got := store.Stats().TotalDocuments; got != 8 {
		t.Fatalf("expected 8 documents after overlay, got %d", got)
	}

	var sawReplacement, sawNew bool
	for _, d := range store.Documents() {
		if d.ID == "leave_policy" && d.Source == "HR_Policy_2025.pdf" {
			sawReplacement = true
		}
		if d.ID == "parking" {
			sawNew = true
		}
	}
	if !sawReplacement {
		t.Error("overlay did not replace leave_policy")
	}
	if !sawNew {
		t.Error("overlay did not append parking")
	}
}

func TestNewFromFileRejectsMissingID(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`[{"content": "no id"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFromFile(path); err == nil {
		t.Fatal("expected error for document without id")
	}
}

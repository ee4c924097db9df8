package ollama_provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("expected path /api/generate, got %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("stream must be false")
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("unexpected model %q", req.Model)
		}
		_ = json.NewEncoder(w).Encode(generateResponse{Model: req.Model, Response: "Short answer.", Done: true})
	}))
	defer server.Close()

	c := NewClient(server.URL, "llama3.1:8b", 0.3)
	got, err := c.Generate(context.Background(), "A prompt.")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Short answer." {
		t.Fatalf("unexpected response %q", got)
	}
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "llama3.1:8b", 0.3)
	_, err := c.Generate(context.Background(), "A prompt.")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("error should carry the API message, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "too late"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "llama3.1:8b", 0.3)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Generate(ctx, "A prompt."); err == nil {
		t.Fatal("expected error when the context deadline passes")
	}
}

func TestAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("expected path /api/tags, got %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"models": []}`))
	}))
	defer server.Close()

	if !NewClient(server.URL, "llama3.1:8b", 0).Available(context.Background()) {
		t.Fatal("expected available against a healthy endpoint")
	}

	server.Close()
	if NewClient(server.URL, "llama3.1:8b", 0).Available(context.Background()) {
		t.Fatal("expected unavailable after the endpoint goes away")
	}
}

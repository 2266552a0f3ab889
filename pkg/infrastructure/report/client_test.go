package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nkaya/mixplan/pkg/infrastructure/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.ReportConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestClient_Generate(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Reorder citric acid."}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.Generate(context.Background(), "analyze this stock")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Reorder citric acid." {
		t.Errorf("Expected generated text, got %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Expected bearer auth, got %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("Expected chat completions path, got %q", gotPath)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("Expected configured model, got %q", gotReq.Model)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "analyze this stock" {
		t.Errorf("Expected prompt forwarded, got %+v", gotReq.Messages)
	}
}

func TestClient_GenerateMissingKey(t *testing.T) {
	client := NewClient(config.ReportConfig{BaseURL: "http://unused", Model: "m", Timeout: time.Second}, nil)

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error without an API key")
	}
	if err.Error() != "LLM_API_KEY not configured" {
		t.Errorf("Expected missing key error, got %q", err.Error())
	}
}

func TestClient_GenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

func TestClient_GenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Expected error for empty choices")
	}
	if !strings.Contains(err.Error(), "no choices") {
		t.Errorf("Expected no choices error, got %v", err)
	}
}

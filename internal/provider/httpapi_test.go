package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func completionBody(t *testing.T, content any) string {
	t.Helper()
	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("failed to marshal content: %v", err)
	}
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": string(raw)}},
		},
	})
	if err != nil {
		t.Fatalf("failed to marshal completion: %v", err)
	}
	return string(body)
}

func TestHTTPAPITranslate(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody(t, map[string]any{
			"detected_language": "de",
			"translations":      map[string]string{"en": "father"},
		})))
	}))
	defer server.Close()

	backend := NewHTTPAPI(Config{APIKey: "test-key", Model: "test-model", BaseURL: server.URL})
	resp, err := backend.Translate(context.Background(), Request{
		Text:         "Vater",
		Targets:      []string{"en"},
		ForcedSource: "de",
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if resp.Translations["en"] != "father" {
		t.Errorf("translation = %q, want father", resp.Translations["en"])
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
	format, _ := gotBody["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", gotBody["response_format"])
	}
}

func TestHTTPAPITranslateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := NewHTTPAPI(Config{APIKey: "k", Model: "m", BaseURL: server.URL})
	if _, err := backend.Translate(context.Background(), Request{Text: "x", Targets: []string{"en"}}); err == nil {
		t.Fatal("Translate against failing server succeeded, want error")
	}
}

func TestHTTPAPITranslateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	backend := NewHTTPAPI(Config{APIKey: "k", Model: "m", BaseURL: server.URL})
	if _, err := backend.Translate(context.Background(), Request{Text: "x", Targets: []string{"en"}}); err == nil {
		t.Fatal("Translate with empty choices succeeded, want error")
	}
}

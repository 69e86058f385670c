package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client with normalized base URL", func(t *testing.T) {
		client := NewClient("http://localhost:8000/", "alice")
		if client.BaseURL != "http://localhost:8000" {
			t.Errorf("expected BaseURL 'http://localhost:8000', got %s", client.BaseURL)
		}
		if client.UserID != "alice" {
			t.Errorf("expected UserID 'alice', got %s", client.UserID)
		}
	})

	t.Run("removes trailing slashes", func(t *testing.T) {
		client := NewClient("http://example.com///", "")
		if client.BaseURL != "http://example.com" {
			t.Errorf("expected BaseURL 'http://example.com', got %s", client.BaseURL)
		}
	})

	t.Run("sets default HTTP client timeout", func(t *testing.T) {
		client := NewClient("http://localhost:8000", "")
		if client.HTTPClient == nil {
			t.Fatal("expected HTTPClient to be set")
		}
		if client.HTTPClient.Timeout == 0 {
			t.Error("expected HTTPClient to have a timeout set")
		}
	})
}

func TestAPIError(t *testing.T) {
	t.Run("formats error message correctly", func(t *testing.T) {
		err := &APIError{Status: 404, Message: "Event not found"}
		expected := "api: 404 — Event not found"
		if err.Error() != expected {
			t.Errorf("expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestClient_Get(t *testing.T) {
	t.Run("sends request ID and accept header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET request, got %s", r.Method)
			}
			if r.Header.Get("Accept") != "application/json" {
				t.Errorf("expected Accept header 'application/json', got %s", r.Header.Get("Accept"))
			}
			if r.Header.Get("X-Request-ID") == "" {
				t.Error("expected X-Request-ID header to be set")
			}
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		var result map[string]string
		if err := client.Get("/test", nil, &result); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	})

	t.Run("appends query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("user_id") != "alice" {
				t.Errorf("expected user_id=alice, got %s", r.URL.Query().Get("user_id"))
			}
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "alice")
		var result map[string]string
		if err := client.Get("/test", client.viewerParams(), &result); err != nil {
			t.Fatalf("Get() returned error: %v", err)
		}
	})

	t.Run("extracts FastAPI detail from error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Event not found"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		err := client.Get("/test", nil, nil)
		if err == nil {
			t.Fatal("expected error for 404 status")
		}
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Status != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", apiErr.Status)
		}
		if apiErr.Message != "Event not found" {
			t.Errorf("expected detail message, got %q", apiErr.Message)
		}
	})

	t.Run("falls back to raw body on unstructured errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		err := client.Get("/test", nil, nil)
		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Message != "bad gateway" {
			t.Errorf("expected raw body message, got %q", apiErr.Message)
		}
	})
}

func TestClient_Post(t *testing.T) {
	t.Run("makes POST request with JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST request, got %s", r.Method)
			}
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got %s", r.Header.Get("Content-Type"))
			}

			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			if body["title"] != "Fall Mixer" {
				t.Errorf("expected title 'Fall Mixer', got %s", body["title"])
			}

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]int{"eventID": 7})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		var result map[string]int
		if err := client.Post("/events", map[string]string{"title": "Fall Mixer"}, &result); err != nil {
			t.Fatalf("Post() returned error: %v", err)
		}
		if result["eventID"] != 7 {
			t.Errorf("expected eventID 7, got %d", result["eventID"])
		}
	})

	t.Run("handles nil body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") == "application/json" {
				t.Error("did not expect a Content-Type header without a body")
			}
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer server.Close()

		client := NewClient(server.URL, "")
		if err := client.Post("/test", nil, nil); err != nil {
			t.Fatalf("Post() returned error: %v", err)
		}
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("sends DELETE with a JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE request, got %s", r.Method)
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			if body["user_id"] != "alice" {
				t.Errorf("expected user_id 'alice', got %s", body["user_id"])
			}
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]int{"likes": 3})
		}))
		defer server.Close()

		client := NewClient(server.URL, "alice")
		var result map[string]int
		if err := client.Delete("/events/1/like", map[string]string{"user_id": "alice"}, &result); err != nil {
			t.Fatalf("Delete() returned error: %v", err)
		}
		if result["likes"] != 3 {
			t.Errorf("expected likes 3, got %d", result["likes"])
		}
	})
}

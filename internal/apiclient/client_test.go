package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/internal/clipboard"
	"dashboard/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /shares", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items []models.ShareItem `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Items) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "share has no items"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "code": "ABC234", "expiresIn": "24 heures"})
	})
	mux.HandleFunc("GET /shares/{code}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("code") != "ABC234" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"error": "share not found or expired"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"share": models.Share{
				Code:  "ABC234",
				Items: []models.ShareItem{{ID: "ABC234-0", Kind: models.KindText, Content: "hello"}},
			},
		})
	})
	mux.HandleFunc("DELETE /shares/{code}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("code") != "ABC234" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"error": "share not found or already deleted"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "share deleted successfully"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientCreate(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL)

	code, err := client.Create(context.Background(), []models.ShareItem{
		{Kind: models.KindText, Content: "hello"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if code != "ABC234" {
		t.Errorf("code = %q, want ABC234", code)
	}
}

func TestClientCreateRejection(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL)

	_, err := client.Create(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error for an empty item list")
	}
}

func TestClientRetrieve(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL)

	share, err := client.Retrieve(context.Background(), "abc234")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if share.Code != "ABC234" || len(share.Items) != 1 {
		t.Errorf("share = %+v", share)
	}
}

func TestClientRetrieveNotFound(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL)

	_, err := client.Retrieve(context.Background(), "ZZZZZZ")
	if !errors.Is(err, clipboard.ErrShareNotFound) {
		t.Fatalf("Retrieve error = %v, want ErrShareNotFound", err)
	}
}

func TestClientDelete(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL)

	if err := client.Delete(context.Background(), "ABC234"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := client.Delete(context.Background(), "ZZZZZZ"); !errors.Is(err, clipboard.ErrShareNotFound) {
		t.Fatalf("Delete error = %v, want ErrShareNotFound", err)
	}
}

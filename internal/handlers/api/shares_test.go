package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"dashboard/internal/clipboard"
	"dashboard/internal/models"
	"dashboard/internal/testutil"
)

func newTestApp(t *testing.T, svc *clipboard.Service) *fiber.App {
	t.Helper()

	// Match the server's body limit so oversized payloads reach the
	// handler's own validation instead of fasthttp's transport limit.
	app := fiber.New(fiber.Config{BodyLimit: 8 * 1024 * 1024})
	h := NewShareHandler(svc)
	app.Post("/shares", h.Create)
	app.Get("/shares/:code", h.Get)
	app.Delete("/shares/:code", h.Delete)
	return app
}

func postShare(t *testing.T, app *fiber.App, items []models.ShareItem) *http.Response {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"items": items})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req, _ := http.NewRequest("POST", "/shares", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("decode body failed: %v (%s)", err, data)
	}
	return body
}

func TestShareEndToEnd(t *testing.T) {
	svc, _ := testutil.NewShareService(t)
	app := newTestApp(t, svc)

	// Create
	resp := postShare(t, app, []models.ShareItem{testutil.TextItem("hello")})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("create success = %v, want true", body["success"])
	}
	code, _ := body["code"].(string)
	if len(code) != clipboard.CodeLength {
		t.Fatalf("code = %q, want a 6-character code", code)
	}
	if body["expiresIn"] != "24 heures" {
		t.Errorf("expiresIn = %v, want %q", body["expiresIn"], "24 heures")
	}

	// Retrieve
	req, _ := http.NewRequest("GET", "/shares/"+code, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d, want 200", resp.StatusCode)
	}
	body = decodeBody(t, resp)
	share, _ := body["share"].(map[string]any)
	if share == nil {
		t.Fatalf("response has no share: %v", body)
	}
	items, _ := share["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item, _ := items[0].(map[string]any)
	if item["kind"] != "text" || item["content"] != "hello" {
		t.Errorf("item = %v, want the submitted text item", item)
	}
	if id, _ := item["id"].(string); id == "" {
		t.Error("item id is empty")
	}
	if createdAt, _ := item["createdAt"].(string); createdAt == "" {
		t.Error("item createdAt is empty")
	}

	// Delete
	req, _ = http.NewRequest("DELETE", "/shares/"+code, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", resp.StatusCode)
	}

	// Retrieve after delete
	req, _ = http.NewRequest("GET", "/shares/"+code, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateShareRejections(t *testing.T) {
	svc, _ := testutil.NewShareService(t)
	app := newTestApp(t, svc)

	tests := []struct {
		name  string
		items []models.ShareItem
	}{
		{name: "no items", items: nil},
		{
			name:  "aggregate over 4MB",
			items: []models.ShareItem{testutil.TextItem(strings.Repeat("a", clipboard.MaxShareSize+1))},
		},
		{
			name: "file over 2MB",
			items: []models.ShareItem{{
				Kind:     models.KindFile,
				Content:  "data:application/octet-stream;base64,AA==",
				FileName: "big.bin",
				FileSize: clipboard.MaxFileSize + 1,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postShare(t, app, tt.items)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			body := decodeBody(t, resp)
			if msg, _ := body["error"].(string); msg == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestCreateShareInvalidBody(t *testing.T) {
	svc, _ := testutil.NewShareService(t)
	app := newTestApp(t, svc)

	req, _ := http.NewRequest("POST", "/shares", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRetrieveLowercaseCode(t *testing.T) {
	svc, _ := testutil.NewShareService(t)
	app := newTestApp(t, svc)

	resp := postShare(t, app, []models.ShareItem{testutil.TextItem("casing")})
	code, _ := decodeBody(t, resp)["code"].(string)

	req, _ := http.NewRequest("GET", "/shares/"+strings.ToLower(code), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lowercase get status = %d, want 200", resp.StatusCode)
	}
}

func TestShareNotFound(t *testing.T) {
	svc, _ := testutil.NewShareService(t)
	app := newTestApp(t, svc)

	for _, method := range []string{"GET", "DELETE"} {
		req, _ := http.NewRequest(method, "/shares/ZZZZZZ", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s failed: %v", method, err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", method, resp.StatusCode)
		}
	}
}

func TestStoreNotConfigured(t *testing.T) {
	app := newTestApp(t, nil)

	requests := []struct {
		method string
		path   string
		body   io.Reader
	}{
		{"POST", "/shares", strings.NewReader(`{"items":[{"kind":"text","content":"x"}]}`)},
		{"GET", "/shares/ABC234", nil},
		{"DELETE", "/shares/ABC234", nil},
	}

	for _, r := range requests {
		req, _ := http.NewRequest(r.method, r.path, r.body)
		if r.body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", r.method, r.path, err)
		}
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("%s %s status = %d, want 500", r.method, r.path, resp.StatusCode)
		}
	}
}

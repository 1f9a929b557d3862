package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/db"
	"github.com/lakelodge/internal/handler"
	"github.com/lakelodge/internal/router"
	"github.com/lakelodge/internal/storage"
)

// TestMain moves to the repository root so the router finds the HTML
// templates and static assets with their relative paths.
func TestMain(m *testing.M) {
	if err := os.Chdir("../.."); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// startServer boots the full HTTP stack against a throwaway database.
func startServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := db.Init(filepath.Join(t.TempDir(), "e2e.db")); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.EnsureUser("admin", "admin123"); err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}

	store := storage.NewLocalStore(t.TempDir(), "/static/uploads")
	api := handler.NewAPI(db.DB, store, nil)
	r := router.SetupRouter(api, "test-session-secret", t.TempDir(), "/static/uploads")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return server, client
}

func postJSON(t *testing.T, client *http.Client, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	return doJSON(t, client, http.MethodPost, target, body)
}

func doJSON(t *testing.T, client *http.Client, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, target, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func login(t *testing.T, client *http.Client, base, username, password string) *http.Response {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := client.Post(base+"/admin/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	resp.Body.Close()
	return resp
}

func TestAdminGalleryWorkflow(t *testing.T) {
	server, client := startServer(t)

	// Admin API is closed to anonymous clients.
	resp, _ := doJSON(t, client, http.MethodGet, server.URL+"/api/admin/gallery", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", resp.StatusCode)
	}

	if resp := login(t, client, server.URL, "admin", "wrong"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}

	resp = login(t, client, server.URL, "admin", "admin123")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after login, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", location)
	}

	// Seed the built-in lakes defaults.
	resp, body := postJSON(t, client, server.URL+"/api/admin/gallery/seed", gin.H{"category": "lakes"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("seed failed with %d: %v", resp.StatusCode, body)
	}
	if body["inserted"].(float64) != 4 || body["failed"].(float64) != 0 {
		t.Fatalf("unexpected seed counts: %v", body)
	}

	resp, body = doJSON(t, client, http.MethodGet, server.URL+"/api/admin/gallery?category=lakes", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list failed with %d", resp.StatusCode)
	}
	images := body["images"].([]interface{})
	if len(images) != 4 {
		t.Fatalf("expected 4 seeded images, got %d", len(images))
	}
	lastID := uint(images[3].(map[string]interface{})["id"].(float64))

	// Drag the last image to the front; the category must renumber densely.
	resp, body = postJSON(t, client, server.URL+"/api/admin/gallery/move", gin.H{"id": lastID, "position": 1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("move failed with %d: %v", resp.StatusCode, body)
	}
	moved := body["images"].([]interface{})
	if uint(moved[0].(map[string]interface{})["id"].(float64)) != lastID {
		t.Fatalf("expected moved image first, got %v", moved[0])
	}
	for i, raw := range moved {
		img := raw.(map[string]interface{})
		if int(img["display_order"].(float64)) != i+1 {
			t.Fatalf("expected dense ordering after move, position %d has %v", i, img["display_order"])
		}
	}

	// New uploads land after the existing images.
	resp, body = postJSON(t, client, server.URL+"/api/admin/gallery", gin.H{
		"image_url": "https://example.com/new.jpg",
		"category":  "lakes",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create failed with %d: %v", resp.StatusCode, body)
	}
	created := body["image"].(map[string]interface{})
	if int(created["display_order"].(float64)) != 5 {
		t.Fatalf("expected ordinal 5 for new image, got %v", created["display_order"])
	}
	createdID := uint(created["id"].(float64))

	resp, body = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/api/admin/gallery?id=%d", server.URL, createdID), nil)
	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("delete failed with %d: %v", resp.StatusCode, body)
	}

	// Logging out closes the admin API again.
	logout, err := client.Get(server.URL + "/admin/logout")
	if err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	logout.Body.Close()

	resp, _ = doJSON(t, client, http.MethodGet, server.URL+"/api/admin/gallery", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestPublicContactFlow(t *testing.T) {
	server, client := startServer(t)

	resp, body := postJSON(t, client, server.URL+"/api/contact", gin.H{
		"name":    "Jo Fisher",
		"email":   "jo@example.com",
		"message": "Do you have openings in May?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("contact submit failed with %d: %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("unexpected contact response: %v", body)
	}

	resp, body = postJSON(t, client, server.URL+"/api/contact", gin.H{"email": "jo@example.com"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete form, got %d", resp.StatusCode)
	}
	if body["error"] != "Name, email, and message are required" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server, client := startServer(t)

	resp, body := doJSON(t, client, http.MethodGet, server.URL+"/ping", nil)
	if resp.StatusCode != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping response %d: %v", resp.StatusCode, body)
	}
}

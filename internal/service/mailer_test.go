package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lakelodge/internal/db"
)

func TestMailerDisabledWithoutConfig(t *testing.T) {
	m := NewMailer("", "lodge@example.com", "")
	if m.Enabled() {
		t.Fatalf("mailer without key and recipient must be disabled")
	}
	err := m.SendContactNotification(context.Background(), db.ContactSubmission{Name: "Jo"})
	if !errors.Is(err, ErrMailDisabled) {
		t.Fatalf("expected ErrMailDisabled, got %v", err)
	}
}

func TestMailerSendsEscapedNotification(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody mailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMailer("secret-key", "lodge@example.com", "owner@example.com")
	m.SetBaseURL(server.URL)

	err := m.SendContactNotification(context.Background(), db.ContactSubmission{
		Name:    "Jo <script>",
		Email:   "jo@example.com",
		Message: "1 < 2",
	})
	if err != nil {
		t.Fatalf("failed to send: %v", err)
	}

	if gotPath != "/emails" {
		t.Fatalf("expected POST /emails, got %s", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Fatalf("expected bearer auth, got %q", gotAuth)
	}
	if gotBody.From != "lodge@example.com" || gotBody.To != "owner@example.com" {
		t.Fatalf("unexpected addresses: %+v", gotBody)
	}
	if strings.Contains(gotBody.HTML, "<script>") {
		t.Fatalf("submission fields must be HTML-escaped")
	}
	if !strings.Contains(gotBody.HTML, "Jo &lt;script&gt;") || !strings.Contains(gotBody.HTML, "1 &lt; 2") {
		t.Fatalf("expected escaped fields in body: %s", gotBody.HTML)
	}
	if !strings.Contains(gotBody.HTML, "Not provided") {
		t.Fatalf("expected placeholder for missing phone: %s", gotBody.HTML)
	}
}

func TestMailerSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	m := NewMailer("secret-key", "bogus", "owner@example.com")
	m.SetBaseURL(server.URL)

	err := m.SendContactNotification(context.Background(), db.ContactSubmission{Name: "Jo", Email: "jo@example.com", Message: "hi"})
	if err == nil {
		t.Fatalf("expected error for 4xx response")
	}
	if !strings.Contains(err.Error(), "invalid from address") {
		t.Fatalf("expected API body in error, got %v", err)
	}
}

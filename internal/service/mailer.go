package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lakelodge/internal/db"
)

// ErrMailDisabled means no API key or recipient is configured. Callers treat
// notification mail as best-effort and only log this.
var ErrMailDisabled = errors.New("mail sending is not configured")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Mailer sends contact notifications through a Resend-style HTTP mail API.
type Mailer struct {
	httpClient httpDoer
	baseURL    string
	apiKey     string
	from       string
	to         string
}

// NewMailer constructs a Mailer. An empty apiKey or recipient disables
// sending without failing.
func NewMailer(apiKey, from, to string) *Mailer {
	return &Mailer{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.resend.com",
		apiKey:     strings.TrimSpace(apiKey),
		from:       strings.TrimSpace(from),
		to:         strings.TrimSpace(to),
	}
}

// Enabled reports whether the mailer has everything it needs to send.
func (m *Mailer) Enabled() bool {
	return m.apiKey != "" && m.to != ""
}

// SetHTTPClient replaces the HTTP client, mainly for tests.
func (m *Mailer) SetHTTPClient(client httpDoer) {
	if client == nil {
		m.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	m.httpClient = client
}

// SetBaseURL overrides the mail API base address, mainly for tests.
func (m *Mailer) SetBaseURL(base string) {
	m.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

type mailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendContactNotification emails the lodge owner about a new inquiry.
func (m *Mailer) SendContactNotification(ctx context.Context, submission db.ContactSubmission) error {
	if !m.Enabled() {
		return ErrMailDisabled
	}

	phone := submission.Phone
	if phone == "" {
		phone = "Not provided"
	}
	interest := submission.Interest
	if interest == "" {
		interest = "Not specified"
	}

	body := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Interest:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(phone),
		html.EscapeString(interest),
		html.EscapeString(submission.Message),
	)

	payload, err := json.Marshal(mailRequest{
		From:    m.from,
		To:      m.to,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", submission.Name),
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := m.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(raw))
		if msg != "" {
			return fmt.Errorf("mail API returned %s: %s", resp.Status, msg)
		}
		return fmt.Errorf("mail API returned %s", resp.Status)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lakelodge/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.ContactSubmission{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestContactCreateRequiresNameEmailMessage(t *testing.T) {
	gdb, cleanup := setupContactTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb, nil)

	incomplete := []ContactInput{
		{Email: "jo@example.com", Message: "hi"},
		{Name: "Jo", Message: "hi"},
		{Name: "Jo", Email: "jo@example.com"},
		{Name: "   ", Email: "jo@example.com", Message: "hi"},
	}
	for i, input := range incomplete {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, ErrContactFieldMissing) {
			t.Fatalf("case %d: expected ErrContactFieldMissing, got %v", i, err)
		}
	}

	var count int64
	gdb.Model(&db.ContactSubmission{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after rejected submissions, got %d", count)
	}
}

func TestContactCreateStoresSubmission(t *testing.T) {
	gdb, cleanup := setupContactTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb, nil)

	created, err := svc.Create(context.Background(), ContactInput{
		Name:     "  Jo Fisher ",
		Email:    "jo@example.com",
		Phone:    "555-0100",
		Interest: "fishing",
		Message:  "Do you have openings in May?",
	})
	if err != nil {
		t.Fatalf("failed to create submission: %v", err)
	}
	if created.Name != "Jo Fisher" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.IsRead {
		t.Fatalf("new submissions must start unread")
	}

	var count int64
	gdb.Model(&db.ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestContactCreateSurvivesMailFailure(t *testing.T) {
	gdb, cleanup := setupContactTestDB(t)
	defer cleanup()

	mailer := NewMailer("key", "lodge@example.com", "owner@example.com")
	mailer.SetHTTPClient(failingDoer{})
	svc := NewContactService(gdb, mailer)

	created, err := svc.Create(context.Background(), ContactInput{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("mail failure must not fail the submission: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a persisted submission")
	}
}

func TestContactMarkReadAndDelete(t *testing.T) {
	gdb, cleanup := setupContactTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb, nil)
	created, err := svc.Create(context.Background(), ContactInput{Name: "Jo", Email: "jo@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("failed to create submission: %v", err)
	}

	unread, err := svc.UnreadCount()
	if err != nil || unread != 1 {
		t.Fatalf("expected 1 unread, got %d (%v)", unread, err)
	}

	if err := svc.MarkRead(created.ID); err != nil {
		t.Fatalf("failed to mark read: %v", err)
	}
	unread, _ = svc.UnreadCount()
	if unread != 0 {
		t.Fatalf("expected 0 unread after marking, got %d", unread)
	}

	if err := svc.MarkRead(9999); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound, got %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("expected ErrContactNotFound on second delete, got %v", err)
	}
}

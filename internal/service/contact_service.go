package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/lakelodge/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound     = errors.New("contact submission not found")
	ErrContactFieldMissing = errors.New("name, email, and message are required")
)

// ContactService stores visitor inquiries and notifies the owner.
type ContactService struct {
	db     *gorm.DB
	mailer *Mailer
}

// ContactInput carries a contact form submission.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string
}

// NewContactService creates a ContactService. mailer may be nil.
func NewContactService(gdb *gorm.DB, mailer *Mailer) *ContactService {
	return &ContactService{db: gdb, mailer: mailer}
}

// Create validates and stores a submission, then sends the notification
// email best-effort: a mail failure never fails the request.
func (s *ContactService) Create(ctx context.Context, input ContactInput) (*db.ContactSubmission, error) {
	submission := db.ContactSubmission{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Interest: strings.TrimSpace(input.Interest),
		Message:  strings.TrimSpace(input.Message),
	}

	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		return nil, ErrContactFieldMissing
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactNotification(ctx, submission); err != nil {
			if errors.Is(err, ErrMailDisabled) {
				log.Printf("contact: notification mail disabled, submission %d stored only", submission.ID)
			} else {
				log.Printf("contact: failed to send notification for submission %d: %v", submission.ID, err)
			}
		}
	}

	return &submission, nil
}

// List returns submissions, newest first.
func (s *ContactService) List() ([]db.ContactSubmission, error) {
	var items []db.ContactSubmission
	if err := s.db.Order("created_at desc, id desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UnreadCount returns the number of unread submissions.
func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	if err := s.db.Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkRead flags a submission as read.
func (s *ContactService) MarkRead(id uint) error {
	result := s.db.Model(&db.ContactSubmission{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Delete removes a submission.
func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&db.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

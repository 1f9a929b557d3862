package db

import "time"

// ContactSubmission is an append-only record of a visitor inquiry. The only
// mutable field after insert is IsRead.
type ContactSubmission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	Phone     string    `gorm:"size:40" json:"phone"`
	Interest  string    `gorm:"size:80" json:"interest"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice categories.
const (
	TypeLeave   = "leave"
	TypeCollege = "college"
)

// Notice represents a single board announcement. Date is the event date the
// notice concerns, not the record timestamp.
type Notice struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"size:50;not null;index"`
	CreatedBy uint      `json:"createdBy" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// ValidNoticeType reports whether t is one of the allowed categories.
func ValidNoticeType(t string) bool {
	return t == TypeLeave || t == TypeCollege
}

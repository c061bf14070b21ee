package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the string UUID primary key shared by every model.
type Base struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`
}

// BeforeCreate assigns a UUID when the record has no identifier yet.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

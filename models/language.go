package models

import (
	"time"

	"github.com/google/uuid"
)

// Language is a practicable target language
type Language struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex;not null" json:"code"` // ISO 639-1
	Name       string    `gorm:"not null" json:"name"`
	NativeName string    `gorm:"not null" json:"native_name"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

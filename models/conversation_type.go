package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationType is a practice scenario (casual talk, job interview, ...)
type ConversationType struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;not null" json:"name"`
	Description     string    `gorm:"not null" json:"description"`
	DifficultyLevel int       `gorm:"not null" json:"difficulty_level"` // 1 (easiest) .. 4
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

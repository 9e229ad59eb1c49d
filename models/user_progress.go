package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress is the running aggregate of completed sessions for one
// (user, language) pair. Counters only ever grow; rows are never deleted.
type UserProgress struct {
	ID                   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_language" json:"user_id"`
	LanguageID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_language" json:"language_id"`
	SessionsCount        int       `gorm:"not null;default:0" json:"sessions_count"`
	TotalDurationMinutes int       `gorm:"not null;default:0" json:"total_duration_minutes"`
	LastSessionAt        time.Time `gorm:"not null" json:"last_session_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Language Language `gorm:"foreignKey:LanguageID" json:"language"`
}

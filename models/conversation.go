package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationStatus is the lifecycle state of a practice session.
// The only legal transition is StatusActive -> StatusCompleted.
type ConversationStatus string

const (
	StatusActive    ConversationStatus = "ACTIVE"
	StatusCompleted ConversationStatus = "COMPLETED"
)

// Conversation represents one timed practice session
type Conversation struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	LanguageID      uuid.UUID          `gorm:"type:uuid;not null" json:"language_id"`
	TypeID          uuid.UUID          `gorm:"type:uuid;not null" json:"type_id"`
	Status          ConversationStatus `gorm:"not null;default:ACTIVE" json:"status"`
	StartedAt       time.Time          `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time         `json:"ended_at"`
	DurationSeconds *int               `json:"duration_seconds"`

	Language    Language         `gorm:"foreignKey:LanguageID" json:"language"`
	Type        ConversationType `gorm:"foreignKey:TypeID" json:"type"`
	Transcripts []Transcript     `gorm:"foreignKey:ConversationID" json:"transcripts"`
}

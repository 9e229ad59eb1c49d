package models

import (
	"time"

	"github.com/google/uuid"
)

// Transcript is one utterance within a conversation, written by the
// realtime signaling service and read back with the conversation
type Transcript struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	Speaker        string    `gorm:"not null" json:"speaker"` // "user" or "ai"
	Text           string    `gorm:"not null" json:"text"`
	Timestamp      time.Time `gorm:"not null" json:"timestamp"`
}

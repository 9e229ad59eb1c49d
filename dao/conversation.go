package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polyglot-backend/models"
)

// ConversationDAO handles conversation-related database operations
type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

// WithTx returns a ConversationDAO bound to the given transaction
func (d *ConversationDAO) WithTx(tx *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: tx}
}

// CreateConversation inserts a new active conversation
func (d *ConversationDAO) CreateConversation(userID, languageID, typeID uuid.UUID) (*models.Conversation, error) {
	convo := &models.Conversation{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		TypeID:     typeID,
		Status:     models.StatusActive,
		StartedAt:  time.Now().UTC(),
	}
	if err := d.db.Create(convo).Error; err != nil {
		return nil, err
	}
	return convo, nil
}

func (d *ConversationDAO) withIncludes() *gorm.DB {
	return d.db.
		Preload("Language").
		Preload("Type").
		Preload("Transcripts", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		})
}

// GetUserConversation retrieves one of the user's conversations with its
// language, type and ordered transcripts
func (d *ConversationDAO) GetUserConversation(userID, id uuid.UUID) (*models.Conversation, error) {
	var convo models.Conversation
	err := d.withIncludes().
		Where("id = ? AND user_id = ?", id, userID).
		First(&convo).Error
	if err != nil {
		return nil, err
	}
	return &convo, nil
}

// GetConversationsByUser retrieves all of a user's conversations, most
// recently started first
func (d *ConversationDAO) GetConversationsByUser(userID uuid.UUID) ([]models.Conversation, error) {
	var convos []models.Conversation
	err := d.withIncludes().
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&convos).Error
	if err != nil {
		return nil, err
	}
	return convos, nil
}

// GetActiveConversation retrieves an ACTIVE conversation owned by the user
func (d *ConversationDAO) GetActiveConversation(userID, id uuid.UUID) (*models.Conversation, error) {
	var convo models.Conversation
	err := d.db.
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.StatusActive).
		First(&convo).Error
	if err != nil {
		return nil, err
	}
	return &convo, nil
}

// CompleteConversation transitions a conversation ACTIVE -> COMPLETED.
// The status check and the update are one conditional statement, so of
// two concurrent completions exactly one sees RowsAffected == 1; the
// loser gets gorm.ErrRecordNotFound.
func (d *ConversationDAO) CompleteConversation(userID, id uuid.UUID, endedAt time.Time, durationSeconds int) error {
	res := d.db.Model(&models.Conversation{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.StatusActive).
		Updates(map[string]interface{}{
			"status":           models.StatusCompleted,
			"ended_at":         endedAt,
			"duration_seconds": durationSeconds,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountCompletedByUser counts the user's completed conversations
func (d *ConversationDAO) CountCompletedByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Conversation{}).
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Count(&count).Error
	return count, err
}

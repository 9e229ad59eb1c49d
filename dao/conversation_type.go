package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"polyglot-backend/models"
)

// ConversationTypeDAO handles scenario reference-data operations
type ConversationTypeDAO struct {
	db *gorm.DB
}

func NewConversationTypeDAO(db *gorm.DB) *ConversationTypeDAO {
	return &ConversationTypeDAO{db: db}
}

// ListActiveTypes retrieves all active conversation types, easiest first
func (d *ConversationTypeDAO) ListActiveTypes() ([]models.ConversationType, error) {
	var types []models.ConversationType
	if err := d.db.Where("is_active = ?", true).Order("difficulty_level ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetTypeByID retrieves a conversation type by id
func (d *ConversationTypeDAO) GetTypeByID(id uuid.UUID) (*models.ConversationType, error) {
	var typ models.ConversationType
	if err := d.db.First(&typ, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &typ, nil
}

// UpsertType inserts a conversation type keyed by name, leaving existing
// rows untouched. Used by seeding only.
func (d *ConversationTypeDAO) UpsertType(typ *models.ConversationType) error {
	if typ.ID == uuid.Nil {
		typ.ID = uuid.New()
	}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(typ).Error
}

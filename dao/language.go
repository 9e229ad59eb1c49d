package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"polyglot-backend/models"
)

// LanguageDAO handles language reference-data operations
type LanguageDAO struct {
	db *gorm.DB
}

func NewLanguageDAO(db *gorm.DB) *LanguageDAO {
	return &LanguageDAO{db: db}
}

// ListActiveLanguages retrieves all active languages ordered by name
func (d *LanguageDAO) ListActiveLanguages() ([]models.Language, error) {
	var languages []models.Language
	if err := d.db.Where("is_active = ?", true).Order("name ASC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

// GetLanguageByID retrieves a language by id
func (d *LanguageDAO) GetLanguageByID(id uuid.UUID) (*models.Language, error) {
	var language models.Language
	if err := d.db.First(&language, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

// GetLanguageByCode retrieves a language by its ISO code
func (d *LanguageDAO) GetLanguageByCode(code string) (*models.Language, error) {
	var language models.Language
	if err := d.db.Where("code = ?", code).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

// UpsertLanguage inserts a language keyed by code, leaving existing rows
// untouched. Used by seeding only.
func (d *LanguageDAO) UpsertLanguage(language *models.Language) error {
	if language.ID == uuid.Nil {
		language.ID = uuid.New()
	}
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(language).Error
}

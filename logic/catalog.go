package logic

import (
	"errors"

	"gorm.io/gorm"

	"polyglot-backend/dao"
	"polyglot-backend/models"
)

// CatalogLogic serves the language and scenario reference data
type CatalogLogic struct {
	langDAO *dao.LanguageDAO
	typeDAO *dao.ConversationTypeDAO
}

func NewCatalogLogic(langDAO *dao.LanguageDAO, typeDAO *dao.ConversationTypeDAO) *CatalogLogic {
	return &CatalogLogic{langDAO: langDAO, typeDAO: typeDAO}
}

// ListLanguages returns all active languages ordered by name
func (l *CatalogLogic) ListLanguages() ([]models.Language, error) {
	languages, err := l.langDAO.ListActiveLanguages()
	if err != nil {
		return nil, err
	}
	if languages == nil {
		languages = []models.Language{}
	}
	return languages, nil
}

// GetLanguageByCode returns one language by its ISO code
func (l *CatalogLogic) GetLanguageByCode(code string) (*models.Language, error) {
	language, err := l.langDAO.GetLanguageByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return language, nil
}

// ListConversationTypes returns all active scenarios, easiest first
func (l *CatalogLogic) ListConversationTypes() ([]models.ConversationType, error) {
	types, err := l.typeDAO.ListActiveTypes()
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []models.ConversationType{}
	}
	return types, nil
}

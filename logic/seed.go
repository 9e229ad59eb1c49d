package logic

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"polyglot-backend/config"
	"polyglot-backend/dao"
	"polyglot-backend/models"
)

var seedLanguages = []models.Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "ko", Name: "Korean", NativeName: "한국어"},
	{Code: "zh", Name: "Chinese", NativeName: "中文"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
}

var seedConversationTypes = []models.ConversationType{
	{Name: "Casual Conversation", Description: "Everyday topics like hobbies, weather, family, and daily activities", DifficultyLevel: 1},
	{Name: "Travel Scenarios", Description: "Hotel bookings, asking for directions, ordering food, and travel situations", DifficultyLevel: 2},
	{Name: "Business Meeting", Description: "Professional discussions, presentations, and workplace conversations", DifficultyLevel: 3},
	{Name: "Academic Discussion", Description: "Debates, research topics, and educational conversations", DifficultyLevel: 4},
	{Name: "Job Interview", Description: "Interview scenarios, both technical and behavioral questions", DifficultyLevel: 4},
	{Name: "Cultural Exchange", Description: "Discussing traditions, customs, lifestyle, and cultural differences", DifficultyLevel: 2},
}

// Seed upserts the stock languages, conversation types and the demo user.
// It is idempotent and safe to run on every startup.
func Seed(langDAO *dao.LanguageDAO, typeDAO *dao.ConversationTypeDAO, userDAO *dao.UserDAO) error {
	for i := range seedLanguages {
		lang := seedLanguages[i]
		lang.IsActive = true
		if err := langDAO.UpsertLanguage(&lang); err != nil {
			return err
		}
	}
	for i := range seedConversationTypes {
		typ := seedConversationTypes[i]
		typ.IsActive = true
		if err := typeDAO.UpsertType(&typ); err != nil {
			return err
		}
	}

	_, err := userDAO.GetUserByEmail("demo@example.com")
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), config.GlobalConfig.Auth.BcryptCost)
	if err != nil {
		return err
	}
	return userDAO.CreateUser(&models.User{
		Email:          "demo@example.com",
		PasswordHash:   string(hash),
		FirstName:      "Demo",
		LastName:       "User",
		NativeLanguage: "en",
	})
}

package logic

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"polyglot-backend/config"
	"polyglot-backend/dao"
	"polyglot-backend/models"
)

type testEnv struct {
	db          *gorm.DB
	userDAO     *dao.UserDAO
	langDAO     *dao.LanguageDAO
	typeDAO     *dao.ConversationTypeDAO
	convoDAO    *dao.ConversationDAO
	progressDAO *dao.UserProgressDAO

	userID uuid.UUID
	langID uuid.UUID
	typeID uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	config.GlobalConfig.Auth.Secret = "test-secret"
	config.GlobalConfig.Auth.ExpHour = 1
	config.GlobalConfig.Auth.BcryptCost = bcrypt.MinCost

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=10000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.ConversationType{},
		&models.Conversation{},
		&models.Transcript{},
		&models.UserProgress{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	env := &testEnv{
		db:          db,
		userDAO:     dao.NewUserDAO(db),
		langDAO:     dao.NewLanguageDAO(db),
		typeDAO:     dao.NewConversationTypeDAO(db),
		convoDAO:    dao.NewConversationDAO(db),
		progressDAO: dao.NewUserProgressDAO(db),
	}

	user := models.User{Email: "learner@example.com", PasswordHash: "x", FirstName: "Ada", LastName: "L", NativeLanguage: "en"}
	if err := env.userDAO.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	env.userID = user.ID

	lang := models.Language{ID: uuid.New(), Code: "es", Name: "Spanish", NativeName: "Español", IsActive: true}
	if err := db.Create(&lang).Error; err != nil {
		t.Fatalf("create language: %v", err)
	}
	env.langID = lang.ID

	typ := models.ConversationType{ID: uuid.New(), Name: "Casual Conversation", Description: "Everyday topics", DifficultyLevel: 1, IsActive: true}
	if err := db.Create(&typ).Error; err != nil {
		t.Fatalf("create type: %v", err)
	}
	env.typeID = typ.ID

	return env
}

func (e *testEnv) sessions() *SessionLogic {
	return NewSessionLogic(e.db, e.langDAO, e.typeDAO, e.convoDAO, e.progressDAO)
}

func (e *testEnv) stats() *StatsLogic {
	return NewStatsLogic(e.convoDAO, e.progressDAO)
}

// backdate moves a conversation's start into the past so a completion
// observes a known elapsed duration
func (e *testEnv) backdate(t *testing.T, convoID uuid.UUID, ago time.Duration) {
	t.Helper()
	err := e.db.Model(&models.Conversation{}).
		Where("id = ?", convoID).
		Update("started_at", time.Now().UTC().Add(-ago)).Error
	if err != nil {
		t.Fatalf("backdate conversation: %v", err)
	}
}

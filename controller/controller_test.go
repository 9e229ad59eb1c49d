package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"polyglot-backend/config"
	"polyglot-backend/dao"
	"polyglot-backend/logic"
	"polyglot-backend/middleware"
	"polyglot-backend/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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

	userDAO := dao.NewUserDAO(db)
	langDAO := dao.NewLanguageDAO(db)
	typeDAO := dao.NewConversationTypeDAO(db)
	convoDAO := dao.NewConversationDAO(db)
	progressDAO := dao.NewUserProgressDAO(db)

	if err := logic.Seed(langDAO, typeDAO, userDAO); err != nil {
		t.Fatalf("seed: %v", err)
	}

	authCtrl := NewAuthController(logic.NewUserLogic(userDAO))
	catalogCtrl := NewCatalogController(logic.NewCatalogLogic(langDAO, typeDAO))
	sessionCtrl := NewSessionController(logic.NewSessionLogic(db, langDAO, typeDAO, convoDAO, progressDAO))
	statsCtrl := NewStatsController(logic.NewStatsLogic(convoDAO, progressDAO))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.Auth(userDAO)
	api := r.Group("/api")
	{
		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)
		api.GET("/auth/me", auth, authCtrl.Me)
		api.GET("/languages", catalogCtrl.ListLanguages)
		api.GET("/languages/:code", catalogCtrl.GetLanguage)
		api.GET("/conversations/types", catalogCtrl.ListConversationTypes)
		api.POST("/conversations", auth, sessionCtrl.CreateConversation)
		api.GET("/conversations", auth, sessionCtrl.GetConversations)
		api.GET("/conversations/:id", auth, sessionCtrl.GetConversation)
		api.PATCH("/conversations/:id/end", auth, sessionCtrl.EndConversation)
		api.GET("/users/progress", auth, statsCtrl.GetProgress)
		api.GET("/users/stats", auth, statsCtrl.GetStats)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]json.RawMessage
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, out
}

func registerUser(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		`{"email":"ada@example.com","password":"hunter2","firstName":"Ada","lastName":"Lovelace","nativeLanguage":"en"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d, body %s", w.Code, w.Body.String())
	}
	var token string
	if err := json.Unmarshal(body["token"], &token); err != nil || token == "" {
		t.Fatalf("register returned no token: %s", w.Body.String())
	}
	return token
}

func TestSessionFlowOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)
	token := registerUser(t, r)

	// pick a seeded language and type
	w, body := doJSON(t, r, http.MethodGet, "/api/languages/es", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get language: status %d", w.Code)
	}
	var lang models.Language
	if err := json.Unmarshal(body["language"], &lang); err != nil {
		t.Fatalf("decode language: %v", err)
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/conversations/types", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list types: status %d", w.Code)
	}
	var types []models.ConversationType
	if err := json.Unmarshal(body["types"], &types); err != nil || len(types) == 0 {
		t.Fatalf("decode types: %v", err)
	}

	// create a session
	w, body = doJSON(t, r, http.MethodPost, "/api/conversations", token,
		`{"languageId":"`+lang.ID.String()+`","typeId":"`+types[0].ID.String()+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create conversation: status %d, body %s", w.Code, w.Body.String())
	}
	var convo models.Conversation
	if err := json.Unmarshal(body["conversation"], &convo); err != nil {
		t.Fatalf("decode conversation: %v", err)
	}
	if convo.Status != models.StatusActive || convo.Language.Code != "es" {
		t.Errorf("created conversation = %+v, want ACTIVE with language es", convo)
	}

	// give it a measurable duration
	err := db.Model(&models.Conversation{}).
		Where("id = ?", convo.ID).
		Update("started_at", time.Now().UTC().Add(-90*time.Second)).Error
	if err != nil {
		t.Fatalf("backdate conversation: %v", err)
	}

	// end it
	w, body = doJSON(t, r, http.MethodPatch, "/api/conversations/"+convo.ID.String()+"/end", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("end conversation: status %d, body %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(body["conversation"], &convo); err != nil {
		t.Fatalf("decode conversation: %v", err)
	}
	if convo.Status != models.StatusCompleted || convo.DurationSeconds == nil {
		t.Fatalf("ended conversation = %+v, want COMPLETED with a duration", convo)
	}

	// ending again is indistinguishable from a missing conversation
	w, _ = doJSON(t, r, http.MethodPatch, "/api/conversations/"+convo.ID.String()+"/end", token, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second end: status %d, want 404", w.Code)
	}

	// stats reflect the fold
	w, body = doJSON(t, r, http.MethodGet, "/api/users/stats", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get stats: status %d", w.Code)
	}
	var stats logic.UserStats
	if err := json.Unmarshal(body["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalConversations != 1 || stats.TotalMinutes != 2 || stats.LanguagesPracticed != 1 {
		t.Errorf("stats = %+v, want 1 conversation / 2 minutes / 1 language", stats)
	}
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/conversations", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/conversations", "not-a-token", "")
	if w.Code != http.StatusForbidden {
		t.Errorf("bad token: status %d, want 403", w.Code)
	}
}

func TestCreateConversationUnknownLanguage(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerUser(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/conversations", token,
		`{"languageId":"3f333df6-90a4-4fda-8dd3-9485d27cee36","typeId":"3f333df6-90a4-4fda-8dd3-9485d27cee36"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown references: status %d, want 404", w.Code)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "",
		`{"email":"ada@example.com","password":"hunter2","firstName":"Ada","lastName":"Lovelace","nativeLanguage":"en"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate registration: status %d, want 400", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)
	registerUser(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d, want 401", w.Code)
	}
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polyglot-backend/logic"
)

// SessionController handles the conversation lifecycle endpoints
type SessionController struct {
	sessionLogic *logic.SessionLogic
}

func NewSessionController(sessionLogic *logic.SessionLogic) *SessionController {
	return &SessionController{sessionLogic: sessionLogic}
}

// CreateConversation handles POST /api/conversations
func (c *SessionController) CreateConversation(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	type Request struct {
		LanguageID uuid.UUID `json:"languageId" binding:"required"`
		TypeID     uuid.UUID `json:"typeId" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	convo, err := c.sessionLogic.CreateSession(user.ID, req.LanguageID, req.TypeID)
	if err != nil {
		respondError(ctx, err, "Language or conversation type not found")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"conversation": convo})
}

// GetConversations handles GET /api/conversations
func (c *SessionController) GetConversations(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	convos, err := c.sessionLogic.ListSessions(user.ID)
	if err != nil {
		respondError(ctx, err, "Conversation not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"conversations": convos})
}

// GetConversation handles GET /api/conversations/:id
func (c *SessionController) GetConversation(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	convoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID"})
		return
	}

	convo, err := c.sessionLogic.GetSession(user.ID, convoID)
	if err != nil {
		respondError(ctx, err, "Conversation not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"conversation": convo})
}

// EndConversation handles PATCH /api/conversations/:id/end
func (c *SessionController) EndConversation(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	convoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conversation ID"})
		return
	}

	convo, err := c.sessionLogic.EndSession(user.ID, convoID)
	if err != nil {
		respondError(ctx, err, "Active conversation not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"conversation": convo})
}

package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"polyglot-backend/logic"
	"polyglot-backend/models"
)

// currentUser returns the authenticated user stored by the auth middleware
func currentUser(ctx *gin.Context) (*models.User, bool) {
	v, exists := ctx.Get("user")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return nil, false
	}

	user, ok := v.(*models.User)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}
	return user, true
}

// respondError maps a logic error onto an HTTP response. notFound is the
// route-specific message used for logic.ErrNotFound; everything
// unexpected is logged with context and hidden behind a generic body.
func respondError(ctx *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, logic.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, logic.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, logic.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		log.Error().Err(err).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Msg("unhandled error")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

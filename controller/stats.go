package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polyglot-backend/logic"
)

// StatsController serves the per-user progress read model
type StatsController struct {
	statsLogic *logic.StatsLogic
}

func NewStatsController(statsLogic *logic.StatsLogic) *StatsController {
	return &StatsController{statsLogic: statsLogic}
}

// GetProgress handles GET /api/users/progress
func (c *StatsController) GetProgress(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	progress, err := c.statsLogic.GetProgress(user.ID)
	if err != nil {
		respondError(ctx, err, "Progress not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"progress": progress})
}

// GetStats handles GET /api/users/stats
func (c *StatsController) GetStats(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	stats, err := c.statsLogic.GetStats(user.ID)
	if err != nil {
		respondError(ctx, err, "Stats not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"stats": stats})
}

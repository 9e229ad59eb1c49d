package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polyglot-backend/logic"
)

// CatalogController serves the language and scenario reference data
type CatalogController struct {
	catalogLogic *logic.CatalogLogic
}

func NewCatalogController(catalogLogic *logic.CatalogLogic) *CatalogController {
	return &CatalogController{catalogLogic: catalogLogic}
}

// ListLanguages handles GET /api/languages
func (c *CatalogController) ListLanguages(ctx *gin.Context) {
	languages, err := c.catalogLogic.ListLanguages()
	if err != nil {
		respondError(ctx, err, "Language not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"languages": languages})
}

// GetLanguage handles GET /api/languages/:code
func (c *CatalogController) GetLanguage(ctx *gin.Context) {
	language, err := c.catalogLogic.GetLanguageByCode(ctx.Param("code"))
	if err != nil {
		respondError(ctx, err, "Language not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"language": language})
}

// ListConversationTypes handles GET /api/conversations/types
func (c *CatalogController) ListConversationTypes(ctx *gin.Context) {
	types, err := c.catalogLogic.ListConversationTypes()
	if err != nil {
		respondError(ctx, err, "Conversation type not found")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"types": types})
}

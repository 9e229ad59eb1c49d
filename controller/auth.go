package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polyglot-backend/logic"
)

// AuthController handles registration and login
type AuthController struct {
	userLogic *logic.UserLogic
}

func NewAuthController(userLogic *logic.UserLogic) *AuthController {
	return &AuthController{userLogic: userLogic}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email          string `json:"email" binding:"required,email"`
		Password       string `json:"password" binding:"required,min=6"`
		FirstName      string `json:"firstName" binding:"required"`
		LastName       string `json:"lastName" binding:"required"`
		NativeLanguage string `json:"nativeLanguage" binding:"required,len=2"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.userLogic.Register(req.Email, req.Password, req.FirstName, req.LastName, req.NativeLanguage)
	if err != nil {
		respondError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
		"token":   token,
	})
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.userLogic.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Me handles GET /api/auth/me
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/Weryck-Lemos/ElectroStock/internal/services"
	"github.com/Weryck-Lemos/ElectroStock/pkg/token"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	tokens      *token.Manager
}

func NewAuthHandler(userService services.UserService, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login accepts a JSON body or OAuth2-style form fields (username/password),
// so the Swagger-style form login keeps working alongside the SPA.
func (h *AuthHandler) Login(c *gin.Context) {
	var email, password string

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		email, password = req.Email, req.Password
	} else {
		email = c.PostForm("username")
		password = c.PostForm("password")
		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	user, err := h.userService.Authenticate(email, password)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, err := h.tokens.Issue(user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

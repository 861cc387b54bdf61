package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"shop-storefront/internal/models"
	"shop-storefront/internal/repository"
	"shop-storefront/internal/session"
)

type AuthHandler struct {
	users    *repository.UserRepository
	sessions *session.Manager
}

func NewAuthHandler(users *repository.UserRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not create user"})
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if err.Error() == "username already taken" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not create user"})
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, user.ID.Hex(), user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"username": user.Username}})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password required"})
		return
	}

	user, err := h.users.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, user.ID.Hex(), user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not start session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{"username": user.Username}})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Writer, c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not close session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	if _, ok := h.sessions.UserID(c.Request); ok {
		c.JSON(http.StatusOK, gin.H{
			"authenticated": true,
			"user":          gin.H{"username": h.sessions.Username(c.Request)},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// RequireAuth protege las rutas /api con la sesión de usuario
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessions.UserID(c.Request)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

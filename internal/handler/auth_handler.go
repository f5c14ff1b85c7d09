package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplocal/backend-go/internal/models"
	"github.com/shoplocal/backend-go/internal/repository"
	"github.com/shoplocal/backend-go/pkg/response"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler handles user signup and login
type AuthHandler struct {
	users     *repository.UserRepository
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *repository.UserRepository, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		response.BadRequest(c, "name, email and password are required")
		return
	}

	existing, err := h.users.GetByEmail(req.Email)
	if err != nil {
		response.InternalError(c, "Failed to check existing account")
		return
	}
	if existing != nil {
		response.BadRequest(c, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalError(c, "Failed to create account")
		return
	}

	id, err := h.users.Create(models.User{Name: req.Name, Email: req.Email, Password: string(hash)})
	if err != nil {
		response.InternalError(c, "Failed to create account")
		return
	}

	response.Created(c, gin.H{
		"message": "Account created",
		"user":    gin.H{"id": id, "name": req.Name, "email": req.Email},
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		response.InternalError(c, "Failed to look up account")
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(tokenLifetime).Unix(),
	})
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		response.InternalError(c, "Failed to issue token")
		return
	}

	response.Success(c, gin.H{
		"message": "Login successful",
		"token":   signed,
		"user":    gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

package handlers

import (
	"net/http"
	"time"

	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/repositories"
	"passgate-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByLogin(utils.TrimOrEmpty(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "user lookup failed", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong email/username or password"})
		return
	}
	user.PasswordHash = ""

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(currentEnv().JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if utils.TrimOrEmpty(req.Email) == "" || utils.TrimOrEmpty(req.Username) == "" {
		RespondError(c, http.StatusBadRequest, "email and username are required", nil)
		return
	}
	if len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "password must be at least 8 characters", nil)
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.CountByLogin(req.Email, req.Username)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "user check failed", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusBadRequest, "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "password hashing failed", err)
		return
	}

	user, err := repo.Create(models.User{
		Name:         utils.NormalizeSpace(req.Name),
		Username:     utils.TrimOrEmpty(req.Username),
		Email:        utils.TrimOrEmpty(req.Email),
		Phone:        utils.TrimOrEmpty(req.Phone),
		Role:         "staff",
		Status:       "active",
		PasswordHash: string(hash),
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

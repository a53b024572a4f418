package handlers

import (
	"net/http"
	"strconv"

	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid user id", err)
		return 0, false
	}
	return id, true
}

func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func GetUserByID(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func UpdateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var upd models.UserUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}

	hash := ""
	if upd.Password != nil {
		if len(*upd.Password) < 8 {
			RespondError(c, http.StatusBadRequest, "password must be at least 8 characters", nil)
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "password hashing failed", err)
			return
		}
		hash = string(hashed)
	}

	repo := repositories.UserRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(id, upd, hash); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update user", err)
		return
	}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func DeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	if err := (repositories.UserRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

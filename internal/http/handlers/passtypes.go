package handlers

import (
	"net/http"
	"strings"

	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/repositories"
	"passgate-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/pass-types?active=1
func GetPassTypes(c *gin.Context) {
	onlyActive := c.Query("active") == "1" || strings.EqualFold(c.Query("active"), "true")
	types, err := repositories.PassTypeRepository{}.List(onlyActive)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list pass types", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pass_types": types})
}

func GetPassTypeByID(c *gin.Context) {
	pt, err := repositories.PassTypeRepository{}.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pass_type": pt})
}

func CreatePassType(c *gin.Context) {
	var pt models.PassType
	if !BindJSONOrError(c, &pt) {
		return
	}
	pt.Name = utils.NormalizeSpace(pt.Name)
	if pt.Name == "" {
		RespondError(c, http.StatusBadRequest, "pass type name is required", nil)
		return
	}
	if pt.Price < 0 {
		RespondError(c, http.StatusBadRequest, "price cannot be negative", nil)
		return
	}
	if pt.MaxPeople < 1 {
		pt.MaxPeople = 1
	}

	created, err := repositories.PassTypeRepository{}.Create(pt)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create pass type", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pass_type": created})
}

func UpdatePassType(c *gin.Context) {
	id := c.Param("id")
	var upd models.PassTypeUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	if upd.Price != nil && *upd.Price < 0 {
		RespondError(c, http.StatusBadRequest, "price cannot be negative", nil)
		return
	}
	if upd.MaxPeople != nil && *upd.MaxPeople < 1 {
		RespondError(c, http.StatusBadRequest, "max_people must be at least 1", nil)
		return
	}

	repo := repositories.PassTypeRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(id, upd); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update pass type", err)
		return
	}
	pt, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pass_type": pt})
}

func DeletePassType(c *gin.Context) {
	if err := (repositories.PassTypeRepository{}).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pass type deleted"})
}

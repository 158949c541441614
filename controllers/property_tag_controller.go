package controllers

import (
	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
)

// ListPropertyTags returns all tags
func ListPropertyTags(c *gin.Context) {
	var tags []models.PropertyTag
	if err := config.DB.Order("name ASC").Find(&tags).Error; err != nil {
		utils.LogError("Failed to fetch tags: %v", err)
		utils.InternalServerError(c, "Failed to fetch tags", nil)
		return
	}
	utils.Success(c, "Tags retrieved successfully", tags)
}

// CreatePropertyTag adds a new tag, names are unique
func CreatePropertyTag(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Name is required", err.Error())
		return
	}

	var existing int64
	config.DB.Model(&models.PropertyTag{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		utils.Conflict(c, "A tag with this name already exists", nil)
		return
	}

	tag := models.PropertyTag{Name: req.Name}
	if err := config.DB.Create(&tag).Error; err != nil {
		utils.LogError("Failed to create tag: %v", err)
		utils.InternalServerError(c, "Failed to create tag", nil)
		return
	}

	utils.Created(c, "Tag created successfully", tag)
}

// DeletePropertyTag removes a tag
func DeletePropertyTag(c *gin.Context) {
	id := c.Param("id")
	result := config.DB.Delete(&models.PropertyTag{}, id)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete tag", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Tag not found")
		return
	}
	utils.Success(c, "Tag deleted successfully", nil)
}

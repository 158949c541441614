package controllers

import (
	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
)

// PropertyTypeRequest is the payload for creating or updating a property type
type PropertyTypeRequest struct {
	Name     string `json:"name"`
	Sequence *int   `json:"sequence"`
}

// typeOfferCount counts the offers placed across all properties of the type
func typeOfferCount(typeID uint) int64 {
	var count int64
	config.DB.Model(&models.Offer{}).
		Joins("JOIN properties ON properties.id = offers.property_id").
		Where("properties.property_type_id = ?", typeID).
		Count(&count)
	return count
}

// ListPropertyTypes returns all property types ordered by sequence
func ListPropertyTypes(c *gin.Context) {
	var types []models.PropertyType
	if err := config.DB.Order("sequence ASC, name ASC").Find(&types).Error; err != nil {
		utils.LogError("Failed to fetch property types: %v", err)
		utils.InternalServerError(c, "Failed to fetch property types", nil)
		return
	}

	data := make([]gin.H, 0, len(types))
	for _, t := range types {
		data = append(data, gin.H{
			"id":          t.ID,
			"name":        t.Name,
			"sequence":    t.Sequence,
			"offer_count": typeOfferCount(t.ID),
		})
	}

	utils.Success(c, "Property types retrieved successfully", data)
}

// CreatePropertyType adds a new property type, names are unique
func CreatePropertyType(c *gin.Context) {
	var req PropertyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Name == "" {
		utils.ValidationError(c, "Name is required", nil)
		return
	}

	var existing int64
	config.DB.Model(&models.PropertyType{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		utils.Conflict(c, "A property type with this name already exists", nil)
		return
	}

	propertyType := models.PropertyType{Name: req.Name, Sequence: 1}
	if req.Sequence != nil {
		propertyType.Sequence = *req.Sequence
	}

	if err := config.DB.Create(&propertyType).Error; err != nil {
		utils.LogError("Failed to create property type: %v", err)
		utils.InternalServerError(c, "Failed to create property type", nil)
		return
	}

	utils.Created(c, "Property type created successfully", propertyType)
}

// UpdatePropertyType renames or reorders a property type
func UpdatePropertyType(c *gin.Context) {
	id := c.Param("id")
	var propertyType models.PropertyType
	if err := config.DB.First(&propertyType, id).Error; err != nil {
		utils.NotFound(c, "Property type not found")
		return
	}

	var req PropertyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.Name != "" {
		propertyType.Name = req.Name
	}
	if req.Sequence != nil {
		propertyType.Sequence = *req.Sequence
	}

	if err := config.DB.Save(&propertyType).Error; err != nil {
		utils.LogError("Failed to update property type %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update property type", nil)
		return
	}

	utils.Success(c, "Property type updated successfully", propertyType)
}

// DeletePropertyType removes a property type that has no properties attached
func DeletePropertyType(c *gin.Context) {
	id := c.Param("id")

	var propertyCount int64
	config.DB.Model(&models.Property{}).Where("property_type_id = ?", id).Count(&propertyCount)
	if propertyCount > 0 {
		utils.BadRequest(c, "Cannot delete a property type that is still in use", nil)
		return
	}

	result := config.DB.Delete(&models.PropertyType{}, id)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete property type", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Property type not found")
		return
	}

	utils.Success(c, "Property type deleted successfully", nil)
}

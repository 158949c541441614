package controllers

import (
	"strconv"
	"time"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PropertyRequest is the payload for creating or updating a listing
type PropertyRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Postcode          string  `json:"postcode"`
	ExpectedPrice     float64 `json:"expected_price"`
	Bedrooms          *int    `json:"bedrooms"`
	LivingArea        int     `json:"living_area"`
	Facades           int     `json:"facades"`
	Garage            bool    `json:"garage"`
	Garden            bool    `json:"garden"`
	GardenArea        int     `json:"garden_area"`
	GardenOrientation string  `json:"garden_orientation"`
	ConstructionYear  int     `json:"construction_year"`
	PropertyTypeID    *uint   `json:"property_type_id"`
	TagIDs            []uint  `json:"tag_ids"`
}

// propertyResponse builds the API view of a property including the derived attributes
func propertyResponse(p *models.Property) gin.H {
	return gin.H{
		"id":                  p.ID,
		"reference":           p.Reference,
		"name":                p.Name,
		"description":         p.Description,
		"postcode":            p.Postcode,
		"date_availability":   p.DateAvailability,
		"expected_price":      p.ExpectedPrice,
		"selling_price":       p.SellingPrice,
		"discount_applied":    p.DiscountApplied,
		"bedrooms":            p.Bedrooms,
		"living_area":         p.LivingArea,
		"facades":             p.Facades,
		"garage":              p.Garage,
		"garden":              p.Garden,
		"garden_area":         p.GardenArea,
		"garden_orientation":  p.GardenOrientation,
		"construction_year":   p.ConstructionYear,
		"state":               p.State,
		"is_favourite":        p.IsFavourite,
		"sold_date":           p.SoldDate,
		"property_type_id":    p.PropertyTypeID,
		"salesman_id":         p.SalesmanID,
		"buyer_id":            p.BuyerID,
		"tags":                p.Tags,
		"total_area":          p.TotalArea(),
		"price_per_sqm":       p.PricePerSqm(),
		"age":                 p.Age(),
		"best_price":          p.BestPrice(),
		"average_offer_price": p.AverageOfferPrice(),
		"offer_count":         p.OfferCount(),
	}
}

// ListProperties returns listings with pagination and optional filters
func ListProperties(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Property{}).Where("active = ?", true)
	if state := c.Query("state"); state != "" {
		query = query.Where("state = ?", state)
	}
	if typeID := c.Query("property_type_id"); typeID != "" {
		query = query.Where("property_type_id = ?", typeID)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		query = query.Where("expected_price >= ?", minPrice)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		query = query.Where("expected_price <= ?", maxPrice)
	}
	if fav := c.Query("favourite"); fav == "true" {
		query = query.Where("is_favourite = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch properties", nil)
		return
	}

	var properties []models.Property
	if err := query.Preload("Offers").Preload("Tags").
		Order("id DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&properties).Error; err != nil {
		utils.LogError("Failed to fetch properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch properties", nil)
		return
	}

	data := make([]gin.H, 0, len(properties))
	for i := range properties {
		data = append(data, propertyResponse(&properties[i]))
	}

	utils.SuccessWithPagination(c, "Properties retrieved successfully", data, total, pagination.Page, pagination.Limit)
}

// GetProperty returns a single listing with its offers
func GetProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	property, err := utils.GetProperty(config.DB.Preload("Tags").Preload("Salesman").Preload("Buyer"), uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	response := propertyResponse(property)
	response["offers"] = property.Offers
	utils.Success(c, "Property retrieved successfully", response)
}

// CreateProperty creates a listing with a fresh reference number. The
// authenticated agent becomes the salesman.
func CreateProperty(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	bedrooms := 2
	if req.Bedrooms != nil {
		bedrooms = *req.Bedrooms
	}
	constructionYear := req.ConstructionYear
	if constructionYear == 0 {
		constructionYear = time.Now().Year()
	}

	property := models.Property{
		Name:              req.Name,
		Description:       req.Description,
		Postcode:          req.Postcode,
		DateAvailability:  time.Now().AddDate(0, 0, 90),
		ExpectedPrice:     req.ExpectedPrice,
		Bedrooms:          bedrooms,
		LivingArea:        req.LivingArea,
		Facades:           req.Facades,
		Garage:            req.Garage,
		Garden:            req.Garden,
		GardenArea:        req.GardenArea,
		GardenOrientation: req.GardenOrientation,
		ConstructionYear:  constructionYear,
		State:             models.PropertyStateNew,
		Active:            true,
		PropertyTypeID:    req.PropertyTypeID,
		SalesmanID:        user.ID,
	}
	property.ApplyGardenDefaults()

	if err := utils.ValidateProperty(&property); err != nil {
		utils.HandleError(c, err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.NextReference(tx, utils.PropertySequence, utils.PropertyRefPrefix)
		if err != nil {
			return err
		}
		property.Reference = reference

		if len(req.TagIDs) > 0 {
			var tags []models.PropertyTag
			if err := tx.Find(&tags, req.TagIDs).Error; err != nil {
				return utils.WrapError(err, "failed to load tags")
			}
			property.Tags = tags
		}

		return tx.Create(&property).Error
	})
	if err != nil {
		utils.LogError("Failed to create property: %v", err)
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo("Property %s created by agent %d", property.Reference, user.ID)
	utils.Created(c, "Property created successfully", propertyResponse(&property))
}

// UpdateProperty updates listing fields and revalidates the pricing rules
func UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	property, err := utils.GetProperty(config.DB, uint(id))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	gardenToggled := req.Garden != property.Garden

	if req.Name != "" {
		property.Name = req.Name
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.Postcode != "" {
		property.Postcode = req.Postcode
	}
	if req.ExpectedPrice > 0 {
		property.ExpectedPrice = req.ExpectedPrice
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.LivingArea > 0 {
		property.LivingArea = req.LivingArea
	}
	if req.Facades > 0 {
		property.Facades = req.Facades
	}
	if req.ConstructionYear > 0 {
		property.ConstructionYear = req.ConstructionYear
	}
	if req.PropertyTypeID != nil {
		property.PropertyTypeID = req.PropertyTypeID
	}
	property.Garage = req.Garage
	property.Garden = req.Garden
	if req.GardenArea > 0 {
		property.GardenArea = req.GardenArea
	}
	if req.GardenOrientation != "" {
		property.GardenOrientation = req.GardenOrientation
	}
	if gardenToggled {
		if req.Garden {
			property.GardenArea = req.GardenArea
			property.GardenOrientation = req.GardenOrientation
		}
		property.ApplyGardenDefaults()
	}

	if err := utils.ValidateProperty(property); err != nil {
		utils.HandleError(c, err)
		return
	}
	if err := utils.CheckSellingPriceFloor(property); err != nil {
		utils.HandleError(c, err)
		return
	}

	if err := config.DB.Save(property).Error; err != nil {
		utils.LogError("Failed to update property %d: %v", property.ID, err)
		utils.InternalServerError(c, "Failed to update property", nil)
		return
	}

	utils.Success(c, "Property updated successfully", propertyResponse(property))
}

// DeleteProperty removes a listing, allowed only in new or cancelled state
func DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		return utils.DeleteProperty(tx, uint(id))
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Property deleted successfully", nil)
}

// TopProperties returns the ten most expensive listings
func TopProperties(c *gin.Context) {
	var properties []models.Property
	if err := config.DB.Preload("Offers").
		Order("expected_price DESC").Limit(10).
		Find(&properties).Error; err != nil {
		utils.LogError("Failed to fetch top properties: %v", err)
		utils.InternalServerError(c, "Failed to fetch top properties", nil)
		return
	}

	data := make([]gin.H, 0, len(properties))
	for i := range properties {
		data = append(data, propertyResponse(&properties[i]))
	}
	utils.Success(c, "Top properties retrieved successfully", data)
}

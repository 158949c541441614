package controllers

import (
	"strconv"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
)

// PartnerRequest is the payload for creating or updating a buyer
type PartnerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	IsVIP          *bool  `json:"is_vip"`
	ManagerComment string `json:"manager_comment"`
}

// ListPartners returns buyers with pagination
func ListPartners(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Partner{})
	if vip := c.Query("vip"); vip == "true" {
		query = query.Where("is_vip = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch partners", nil)
		return
	}

	var partners []models.Partner
	if err := query.Order("id DESC").Limit(pagination.Limit).Offset(pagination.Offset).Find(&partners).Error; err != nil {
		utils.LogError("Failed to fetch partners: %v", err)
		utils.InternalServerError(c, "Failed to fetch partners", nil)
		return
	}

	utils.SuccessWithPagination(c, "Partners retrieved successfully", partners, total, pagination.Page, pagination.Limit)
}

// GetPartner returns a single buyer with their offers
func GetPartner(c *gin.Context) {
	id := c.Param("id")
	var partner models.Partner
	if err := config.DB.Preload("Offers").First(&partner, id).Error; err != nil {
		utils.NotFound(c, "Partner not found")
		return
	}
	utils.Success(c, "Partner retrieved successfully", partner)
}

// CreatePartner registers a new buyer
func CreatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Name == "" {
		utils.ValidationError(c, "Name is required", nil)
		return
	}

	partner := models.Partner{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		ManagerComment: req.ManagerComment,
	}
	if req.IsVIP != nil {
		partner.IsVIP = *req.IsVIP
	}

	if err := config.DB.Create(&partner).Error; err != nil {
		utils.LogError("Failed to create partner: %v", err)
		utils.InternalServerError(c, "Failed to create partner", nil)
		return
	}

	utils.Created(c, "Partner created successfully", partner)
}

// UpdatePartner updates buyer details
func UpdatePartner(c *gin.Context) {
	id := c.Param("id")
	var partner models.Partner
	if err := config.DB.First(&partner, id).Error; err != nil {
		utils.NotFound(c, "Partner not found")
		return
	}

	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.Name != "" {
		partner.Name = req.Name
	}
	if req.Email != "" {
		partner.Email = req.Email
	}
	if req.Phone != "" {
		partner.Phone = req.Phone
	}
	if req.Address != "" {
		partner.Address = req.Address
	}
	if req.ManagerComment != "" {
		partner.ManagerComment = req.ManagerComment
	}
	if req.IsVIP != nil {
		partner.IsVIP = *req.IsVIP
	}

	if err := config.DB.Save(&partner).Error; err != nil {
		utils.LogError("Failed to update partner %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update partner", nil)
		return
	}

	utils.Success(c, "Partner updated successfully", partner)
}

// DeletePartner removes a buyer. Buyers holding offers cannot be deleted.
func DeletePartner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid partner ID", nil)
		return
	}

	var offerCount int64
	if err := config.DB.Model(&models.Offer{}).Where("partner_id = ?", id).Count(&offerCount).Error; err != nil {
		utils.InternalServerError(c, "Failed to check partner offers", nil)
		return
	}
	if offerCount > 0 {
		utils.BadRequest(c, "It is not possible to delete a client with offers", nil)
		return
	}

	result := config.DB.Delete(&models.Partner{}, id)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete partner", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Partner not found")
		return
	}

	utils.Success(c, "Partner deleted successfully", nil)
}

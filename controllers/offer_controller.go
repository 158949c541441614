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

// OfferRequest is the payload for placing a bid
type OfferRequest struct {
	PropertyID uint    `json:"property_id" binding:"required"`
	PartnerID  uint    `json:"partner_id" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Validity   int     `json:"validity"`
}

// CreateOffer places a bid on a property
func CreateOffer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	var offer *models.Offer
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		offer, txErr = utils.PlaceOffer(tx, req.PropertyID, req.PartnerID, req.Price, req.Validity)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.LogInfo("Offer %d placed on property %d for %.2f", offer.ID, offer.PropertyID, offer.Price)
	utils.Created(c, "Offer created successfully", offer)
}

// ListPropertyOffers lists all offers on a property, best price first
func ListPropertyOffers(c *gin.Context) {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return
	}

	var offers []models.Offer
	if err := config.DB.Preload("Partner").
		Where("property_id = ?", propertyID).
		Order("price DESC, id ASC").
		Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers for property %d: %v", propertyID, err)
		utils.InternalServerError(c, "Failed to fetch offers", nil)
		return
	}

	utils.Success(c, "Offers retrieved successfully", offers)
}

// AcceptOffer accepts a bid and writes the sale terms onto the property
func AcceptOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	var offer *models.Offer
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var opErr error
		offer, opErr = utils.AcceptOffer(tx, uint(id))
		return opErr
	})
	if txErr != nil {
		utils.HandleError(c, txErr)
		return
	}

	utils.Success(c, "Offer accepted", offer)
}

// RefuseOffer refuses a bid
func RefuseOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	var offer *models.Offer
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var opErr error
		offer, opErr = utils.RefuseOffer(tx, uint(id))
		return opErr
	})
	if txErr != nil {
		utils.HandleError(c, txErr)
		return
	}

	utils.Success(c, "Offer refused", offer)
}

// UpdateOfferRequest adjusts either the validity or the deadline of a bid
type UpdateOfferRequest struct {
	Validity     *int   `json:"validity"`
	DateDeadline string `json:"date_deadline"` // 2006-01-02
}

// UpdateOffer changes the validity window. Setting validity recomputes the
// deadline, setting the deadline recomputes validity.
func UpdateOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body", err.Error())
		return
	}
	if req.Validity == nil && req.DateDeadline == "" {
		utils.BadRequest(c, "Provide either validity or date_deadline", nil)
		return
	}

	var offer *models.Offer
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var opErr error
		if req.Validity != nil {
			offer, opErr = utils.UpdateOfferValidity(tx, uint(id), *req.Validity)
			return opErr
		}
		deadline, parseErr := time.Parse("2006-01-02", req.DateDeadline)
		if parseErr != nil {
			return utils.ValidationFailedError("date_deadline must be formatted as 2006-01-02")
		}
		offer, opErr = utils.UpdateOfferDeadline(tx, uint(id), deadline)
		return opErr
	})
	if txErr != nil {
		utils.HandleError(c, txErr)
		return
	}

	utils.Success(c, "Offer updated", offer)
}

// SweepExpiredOffers lets an admin trigger the expiry sweep on demand
func SweepExpiredOffers(c *gin.Context) {
	expired, err := utils.SweepExpiredOffers(config.DB)
	if err != nil {
		utils.LogError("Offer sweep failed: %v", err)
		utils.InternalServerError(c, "Failed to sweep offers", nil)
		return
	}

	utils.LogInfo("Offer sweep expired %d offers", expired)
	utils.Success(c, "Sweep completed", gin.H{"expired": expired})
}

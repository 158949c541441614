package controllers

import (
	"strconv"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func propertyIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid property ID", nil)
		return 0, false
	}
	return uint(id), true
}

// MarkPropertySold marks a listing as sold and raises the commission invoice.
// The agent is notified by email on a best effort basis.
func MarkPropertySold(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.MarkPropertySold(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	notifySold(property)
	utils.Success(c, "Property marked as sold", propertyResponse(property))
}

// CancelProperty cancels a listing, refused for sold ones
func CancelProperty(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.CancelProperty(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Property cancelled", propertyResponse(property))
}

// AcceptHighestOffer finalizes the sale against the best-priced offer
func AcceptHighestOffer(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.AcceptHighestOffer(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	notifySold(property)
	utils.Success(c, "Highest offer accepted", propertyResponse(property))
}

// CancelAcceptHighestOffer rolls a sold listing back to new
func CancelAcceptHighestOffer(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.CancelAcceptHighestOffer(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Sale rolled back", propertyResponse(property))
}

// ApplyDiscount reduces the expected price by 10%
func ApplyDiscount(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.ApplyDiscount(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Discount applied", propertyResponse(property))
}

// CancelDiscount restores the pre-discount price
func CancelDiscount(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var property *models.Property
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		property, txErr = utils.CancelDiscount(tx, id)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Discount cancelled", propertyResponse(property))
}

// ToggleFavourite flips the favourite flag on a listing
func ToggleFavourite(c *gin.Context) {
	id, ok := propertyIDParam(c)
	if !ok {
		return
	}

	property, err := utils.GetProperty(config.DB, id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	property.IsFavourite = !property.IsFavourite
	if err := config.DB.Model(property).Update("is_favourite", property.IsFavourite).Error; err != nil {
		utils.LogError("Failed to toggle favourite on property %d: %v", property.ID, err)
		utils.InternalServerError(c, "Failed to update property", nil)
		return
	}

	utils.Success(c, "Favourite toggled", propertyResponse(property))
}

// MassUpdateRequest sets one state on a batch of listings
type MassUpdateRequest struct {
	PropertyIDs []uint `json:"property_ids" binding:"required"`
	State       string `json:"state" binding:"required"`
}

// MassUpdatePropertyState applies a state to several listings at once
func MassUpdatePropertyState(c *gin.Context) {
	var req MassUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "property_ids and state are required", err.Error())
		return
	}

	var updated int64
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		updated, txErr = utils.MassUpdatePropertyState(tx, req.PropertyIDs, req.State)
		return txErr
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Success(c, "Properties updated", gin.H{"updated": updated, "state": req.State})
}

// notifySold emails the salesman about the sale. Failures are logged, never surfaced.
func notifySold(property *models.Property) {
	if property == nil || property.State != models.PropertyStateSold {
		return
	}

	var salesman models.User
	if err := config.DB.First(&salesman, property.SalesmanID).Error; err != nil {
		utils.LogError("Sold notification skipped, salesman %d not found: %v", property.SalesmanID, err)
		return
	}

	buyerName := ""
	if property.BuyerID != nil {
		var buyer models.Partner
		if err := config.DB.First(&buyer, *property.BuyerID).Error; err == nil {
			buyerName = buyer.Name
		}
	}

	if err := utils.SendSoldNotification(salesman.Email, property.Name, buyerName, property.SellingPrice); err != nil {
		utils.LogError("Failed to send sold notification for property %d: %v", property.ID, err)
	}
}

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Govind-619/EstateSphere/models"
	"gorm.io/gorm"
)

// GetProperty loads a property with its offers
func GetProperty(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	var property models.Property
	err := tx.Preload("Offers", func(db *gorm.DB) *gorm.DB {
		return db.Order("price DESC, id ASC")
	}).First(&property, propertyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFoundError("Property not found", err)
	}
	if err != nil {
		return nil, WrapError(err, "failed to load property")
	}
	return &property, nil
}

// MarkPropertySold moves a property to the sold state and raises the sale invoice.
// Cancelled properties cannot be sold.
func MarkPropertySold(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.State == models.PropertyStateCancelled {
		return nil, PolicyViolationError("Cancelled property cannot be marked as sold")
	}

	now := time.Now()
	property.State = models.PropertyStateSold
	property.SoldDate = &now
	if err := tx.Model(property).Updates(map[string]interface{}{
		"state":     property.State,
		"sold_date": property.SoldDate,
	}).Error; err != nil {
		return nil, WrapError(err, "failed to update property state")
	}

	// The invoice needs a buyer and a price, both come from an accepted offer
	if property.BuyerID != nil && property.SellingPrice > 0 {
		if _, err := CreateSaleInvoice(tx, property); err != nil {
			return nil, err
		}
	}

	return property, nil
}

// CancelProperty moves a property to the cancelled state. Sold properties stay sold.
func CancelProperty(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.State == models.PropertyStateSold {
		return nil, PolicyViolationError("Sold property cannot be cancelled")
	}

	property.State = models.PropertyStateCancelled
	if err := tx.Model(property).Update("state", property.State).Error; err != nil {
		return nil, WrapError(err, "failed to update property state")
	}
	return property, nil
}

// AcceptHighestOffer accepts the best-priced offer on the property, refuses the
// rest and finalizes the sale. Ties on price go to the oldest offer.
func AcceptHighestOffer(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.State == models.PropertyStateSold {
		return nil, PolicyViolationError("Property is already sold")
	}
	if len(property.Offers) == 0 {
		return nil, PolicyViolationError("There are no offers to accept")
	}

	// Offers are preloaded ordered by price desc, id asc
	best := property.Offers[0]
	if best.Price < property.ExpectedPrice*SellingPriceFloorRate {
		return nil, ValidationFailedError("The selling price cannot be lower than 90% of the expected price")
	}

	if err := tx.Model(&models.Offer{}).
		Where("property_id = ? AND id <> ?", property.ID, best.ID).
		Update("status", models.OfferStatusRefused).Error; err != nil {
		return nil, WrapError(err, "failed to refuse sibling offers")
	}
	if err := tx.Model(&models.Offer{}).
		Where("id = ? AND status <> ?", best.ID, models.OfferStatusAccepted).
		Update("status", models.OfferStatusAccepted).Error; err != nil {
		return nil, WrapError(err, "failed to accept offer")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"buyer_id":      best.PartnerID,
		"selling_price": best.Price,
		"state":         models.PropertyStateSold,
		"sold_date":     now,
	}
	if err := tx.Model(property).Updates(updates).Error; err != nil {
		return nil, WrapError(err, "failed to finalize sale")
	}

	property.BuyerID = &best.PartnerID
	property.SellingPrice = best.Price
	property.State = models.PropertyStateSold
	property.SoldDate = &now

	if _, err := CreateSaleInvoice(tx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// CancelAcceptHighestOffer rolls a sold property back to new, clearing the
// buyer, selling price and sold date. Offer statuses are left untouched.
func CancelAcceptHighestOffer(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.State != models.PropertyStateSold {
		return nil, PolicyViolationError("Property is not sold")
	}

	updates := map[string]interface{}{
		"state":         models.PropertyStateNew,
		"buyer_id":      nil,
		"selling_price": 0,
		"sold_date":     nil,
	}
	if err := tx.Model(property).Updates(updates).Error; err != nil {
		return nil, WrapError(err, "failed to roll back sale")
	}

	property.State = models.PropertyStateNew
	property.BuyerID = nil
	property.SellingPrice = 0
	property.SoldDate = nil
	return property, nil
}

// ApplyDiscount knocks 10% off the expected price, keeping a snapshot for rollback
func ApplyDiscount(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.DiscountApplied {
		return nil, PolicyViolationError("Discount was already applied")
	}

	newPrice := property.ExpectedPrice * (1 - DiscountRate)
	if newPrice < DiscountPriceFloor {
		return nil, ValidationFailedError(fmt.Sprintf("Price must be at least %.0f", DiscountPriceFloor))
	}

	updates := map[string]interface{}{
		"original_price":   property.ExpectedPrice,
		"expected_price":   newPrice,
		"discount_applied": true,
	}
	if err := tx.Model(property).Updates(updates).Error; err != nil {
		return nil, WrapError(err, "failed to apply discount")
	}

	property.OriginalPrice = property.ExpectedPrice
	property.ExpectedPrice = newPrice
	property.DiscountApplied = true
	return property, nil
}

// CancelDiscount restores the pre-discount expected price
func CancelDiscount(tx *gorm.DB, propertyID uint) (*models.Property, error) {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return nil, err
	}

	if !property.DiscountApplied {
		return nil, PolicyViolationError("Discount was not applied")
	}

	updates := map[string]interface{}{
		"expected_price":   property.OriginalPrice,
		"discount_applied": false,
	}
	if err := tx.Model(property).Updates(updates).Error; err != nil {
		return nil, WrapError(err, "failed to cancel discount")
	}

	property.ExpectedPrice = property.OriginalPrice
	property.DiscountApplied = false
	return property, nil
}

// DeleteProperty removes a property and its offers. Only new and cancelled
// properties may be deleted.
func DeleteProperty(tx *gorm.DB, propertyID uint) error {
	property, err := GetProperty(tx, propertyID)
	if err != nil {
		return err
	}

	if !property.CanDelete() {
		return PolicyViolationError("Only new and cancelled properties can be deleted")
	}

	if err := tx.Where("property_id = ?", property.ID).Delete(&models.Offer{}).Error; err != nil {
		return WrapError(err, "failed to delete offers")
	}
	if err := tx.Delete(property).Error; err != nil {
		return WrapError(err, "failed to delete property")
	}
	return nil
}

// MassUpdatePropertyState sets the state on a batch of properties
func MassUpdatePropertyState(tx *gorm.DB, propertyIDs []uint, state string) (int64, error) {
	switch state {
	case models.PropertyStateNew, models.PropertyStateOfferReceived, models.PropertyStateOfferAccepted,
		models.PropertyStateSold, models.PropertyStateCancelled:
	default:
		return 0, ValidationFailedError("Unknown property state: " + state)
	}

	result := tx.Model(&models.Property{}).Where("id IN ?", propertyIDs).Update("state", state)
	if result.Error != nil {
		return 0, WrapError(result.Error, "failed to mass update properties")
	}
	return result.RowsAffected, nil
}

// CreateSaleInvoice raises the billing document for a sold property: 6%
// commission, the fixed administrative fee and the sale price itself.
func CreateSaleInvoice(tx *gorm.DB, property *models.Property) (*models.Invoice, error) {
	if property.BuyerID == nil {
		return nil, PolicyViolationError("Cannot invoice a sale without a buyer")
	}

	number, err := NextReference(tx, InvoiceSequence, InvoiceRefPrefix)
	if err != nil {
		return nil, err
	}

	commission := property.SellingPrice * SaleCommissionRate
	invoice := models.Invoice{
		Number:     number,
		PropertyID: property.ID,
		PartnerID:  *property.BuyerID,
		Total:      commission + SaleAdminFee + property.SellingPrice,
		Lines: []models.InvoiceLine{
			{Description: fmt.Sprintf("%s (commission 6%% of sale price)", property.Name), Quantity: 1, PriceUnit: commission},
			{Description: "Administrative fee", Quantity: 1, PriceUnit: SaleAdminFee},
			{Description: fmt.Sprintf("%s (sale price)", property.Name), Quantity: 1, PriceUnit: property.SellingPrice},
		},
	}

	if err := tx.Create(&invoice).Error; err != nil {
		return nil, WrapError(err, "failed to create invoice")
	}
	return &invoice, nil
}

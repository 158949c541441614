package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/Govind-619/EstateSphere/models"
	"gorm.io/gorm"
)

// PlaceOffer creates a new bid on a property. Bids must strictly beat every
// existing offer on the property, stay within the validity cap, and a partner
// may only hold one non-refused offer per property. The first offer moves a
// new property to offer_received.
func PlaceOffer(tx *gorm.DB, propertyID, partnerID uint, price float64, validity int) (*models.Offer, error) {
	if validity == 0 {
		validity = 7
	}
	if err := ValidateOffer(price, validity); err != nil {
		return nil, err
	}

	var property models.Property
	if err := tx.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Property not found", err)
		}
		return nil, WrapError(err, "failed to load property")
	}

	var partner models.Partner
	if err := tx.First(&partner, partnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Partner not found", err)
		}
		return nil, WrapError(err, "failed to load partner")
	}

	var bestPrice float64
	row := tx.Model(&models.Offer{}).Where("property_id = ?", propertyID).
		Select("COALESCE(MAX(price), 0)").Row()
	if err := row.Scan(&bestPrice); err != nil {
		return nil, WrapError(err, "failed to check existing offers")
	}
	if bestPrice > 0 && price <= bestPrice {
		return nil, PolicyViolationError(fmt.Sprintf("The offer must be higher than %.2f", bestPrice))
	}

	var duplicates int64
	if err := tx.Model(&models.Offer{}).
		Where("property_id = ? AND partner_id = ? AND status <> ?", propertyID, partnerID, models.OfferStatusRefused).
		Count(&duplicates).Error; err != nil {
		return nil, WrapError(err, "failed to check duplicate offers")
	}
	if duplicates > 0 {
		return nil, PolicyViolationError("This buyer has already made an offer on this property")
	}

	offer := models.Offer{
		PropertyID: propertyID,
		PartnerID:  partnerID,
		Price:      price,
		Status:     models.OfferStatusDraft,
		Validity:   validity,
	}
	offer.ComputeDeadline()

	if err := tx.Create(&offer).Error; err != nil {
		return nil, WrapError(err, "failed to create offer")
	}

	if property.State == models.PropertyStateNew {
		if err := tx.Model(&models.Property{}).
			Where("id = ? AND state = ?", propertyID, models.PropertyStateNew).
			Update("state", models.PropertyStateOfferReceived).Error; err != nil {
			return nil, WrapError(err, "failed to update property state")
		}
	}

	return &offer, nil
}

// AcceptOffer accepts a single offer: siblings get refused and the buyer,
// selling price and state are written onto the property in the same
// transaction. Accepting an already accepted offer is a no-op; refused and
// expired offers stay final, and offers on a sold property are rejected.
func AcceptOffer(tx *gorm.DB, offerID uint) (*models.Offer, error) {
	var offer models.Offer
	if err := tx.Preload("Property").First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Offer not found", err)
		}
		return nil, WrapError(err, "failed to load offer")
	}

	if offer.Status == models.OfferStatusAccepted {
		return &offer, nil
	}
	if offer.IsFinal() {
		return nil, PolicyViolationError("A refused or expired offer cannot be accepted")
	}
	if offer.Property.State == models.PropertyStateSold {
		return nil, PolicyViolationError("Property is already sold")
	}

	if offer.Price < offer.Property.ExpectedPrice*SellingPriceFloorRate {
		return nil, ValidationFailedError("The selling price cannot be lower than 90% of the expected price")
	}

	if err := tx.Model(&models.Offer{}).
		Where("property_id = ? AND id <> ?", offer.PropertyID, offer.ID).
		Update("status", models.OfferStatusRefused).Error; err != nil {
		return nil, WrapError(err, "failed to refuse sibling offers")
	}

	// Conditional update so a concurrent sweep cannot finalize past us
	result := tx.Model(&models.Offer{}).
		Where("id = ? AND status = ?", offer.ID, models.OfferStatusDraft).
		Update("status", models.OfferStatusAccepted)
	if result.Error != nil {
		return nil, WrapError(result.Error, "failed to accept offer")
	}
	if result.RowsAffected == 0 {
		return nil, PolicyViolationError("Offer was finalized by another action")
	}

	if err := tx.Model(&models.Property{}).Where("id = ?", offer.PropertyID).
		Updates(map[string]interface{}{
			"buyer_id":      offer.PartnerID,
			"selling_price": offer.Price,
			"state":         models.PropertyStateOfferAccepted,
		}).Error; err != nil {
		return nil, WrapError(err, "failed to update property")
	}

	offer.Status = models.OfferStatusAccepted
	return &offer, nil
}

// RefuseOffer marks an offer refused. Refusing twice is a no-op.
func RefuseOffer(tx *gorm.DB, offerID uint) (*models.Offer, error) {
	var offer models.Offer
	if err := tx.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Offer not found", err)
		}
		return nil, WrapError(err, "failed to load offer")
	}

	if offer.Status == models.OfferStatusRefused {
		return &offer, nil
	}

	if err := tx.Model(&offer).Update("status", models.OfferStatusRefused).Error; err != nil {
		return nil, WrapError(err, "failed to refuse offer")
	}
	offer.Status = models.OfferStatusRefused
	return &offer, nil
}

// UpdateOfferValidity sets a new validity and recomputes the deadline from it
func UpdateOfferValidity(tx *gorm.DB, offerID uint, validity int) (*models.Offer, error) {
	var offer models.Offer
	if err := tx.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Offer not found", err)
		}
		return nil, WrapError(err, "failed to load offer")
	}

	if err := ValidateOffer(offer.Price, validity); err != nil {
		return nil, err
	}

	offer.Validity = validity
	offer.ComputeDeadline()
	if err := tx.Model(&offer).Updates(map[string]interface{}{
		"validity":      offer.Validity,
		"date_deadline": offer.DateDeadline,
	}).Error; err != nil {
		return nil, WrapError(err, "failed to update offer")
	}
	return &offer, nil
}

// UpdateOfferDeadline sets a new deadline and recomputes validity as the day
// delta from the creation date
func UpdateOfferDeadline(tx *gorm.DB, offerID uint, deadline time.Time) (*models.Offer, error) {
	var offer models.Offer
	if err := tx.First(&offer, offerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("Offer not found", err)
		}
		return nil, WrapError(err, "failed to load offer")
	}

	offer.DateDeadline = deadline
	offer.InverseDeadline()
	if err := ValidateOffer(offer.Price, offer.Validity); err != nil {
		return nil, err
	}

	if err := tx.Model(&offer).Updates(map[string]interface{}{
		"validity":      offer.Validity,
		"date_deadline": offer.DateDeadline,
	}).Error; err != nil {
		return nil, WrapError(err, "failed to update offer")
	}
	return &offer, nil
}

// SweepExpiredOffers expires every draft offer older than 30 days. The status
// guard in the WHERE clause makes the sweep idempotent and safe to run next to
// user-driven accepts and refusals.
func SweepExpiredOffers(db *gorm.DB) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -models.OfferExpiryDays)
	result := db.Model(&models.Offer{}).
		Where("status = ? AND created_at < ?", models.OfferStatusDraft, cutoff).
		Update("status", models.OfferStatusExpired)
	if result.Error != nil {
		return 0, WrapError(result.Error, "failed to sweep expired offers")
	}
	return result.RowsAffected, nil
}

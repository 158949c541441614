package utils

import (
	"testing"
	"time"

	"github.com/Govind-619/EstateSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOfferMovesPropertyToOfferReceived(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 95000, 0)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusDraft, offer.Status)
	assert.Equal(t, 7, offer.Validity, "validity should default to one week")

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Equal(t, models.PropertyStateOfferReceived, reloaded.State)
}

func TestPlaceOfferRejectsNonAscendingBids(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	first := seedPartner(t, db, "Bob")
	second := seedPartner(t, db, "Carol")

	_, err := PlaceOffer(db, property.ID, first.ID, 95000, 7)
	require.NoError(t, err)

	_, err = PlaceOffer(db, property.ID, second.ID, 95000, 7)
	assert.True(t, IsPolicyViolation(err), "matching bid must be rejected")

	_, err = PlaceOffer(db, property.ID, second.ID, 90000, 7)
	assert.True(t, IsPolicyViolation(err), "lower bid must be rejected")

	var count int64
	require.NoError(t, db.Model(&models.Offer{}).Where("property_id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "rejected bids must leave no record")

	_, err = PlaceOffer(db, property.ID, second.ID, 95001, 7)
	assert.NoError(t, err)
}

func TestPlaceOfferRejectsDuplicatePartner(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 95000, 7)
	require.NoError(t, err)

	_, err = PlaceOffer(db, property.ID, partner.ID, 98000, 7)
	assert.True(t, IsPolicyViolation(err), "a partner holds at most one live offer per property")

	// A refused offer frees the partner to bid again
	_, err = RefuseOffer(db, offer.ID)
	require.NoError(t, err)
	_, err = PlaceOffer(db, property.ID, partner.ID, 98000, 7)
	assert.NoError(t, err)
}

func TestPlaceOfferValidation(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	_, err := PlaceOffer(db, property.ID, partner.ID, 0, 7)
	assert.True(t, IsValidationError(err))

	_, err = PlaceOffer(db, property.ID, partner.ID, 95000, models.MaxOfferValidityDays+1)
	assert.True(t, IsValidationError(err))

	_, err = PlaceOffer(db, 99999, partner.ID, 95000, 7)
	assert.True(t, IsNotFoundError(err))

	_, err = PlaceOffer(db, property.ID, 99999, 95000, 7)
	assert.True(t, IsNotFoundError(err))
}

func TestAcceptOfferRefusesSiblings(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	bob := seedPartner(t, db, "Bob")
	carol := seedPartner(t, db, "Carol")

	first, err := PlaceOffer(db, property.ID, bob.ID, 95000, 7)
	require.NoError(t, err)
	second, err := PlaceOffer(db, property.ID, carol.ID, 96000, 7)
	require.NoError(t, err)

	accepted, err := AcceptOffer(db, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusAccepted, accepted.Status)

	var sibling models.Offer
	require.NoError(t, db.First(&sibling, second.ID).Error)
	assert.Equal(t, models.OfferStatusRefused, sibling.Status)

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Equal(t, models.PropertyStateOfferAccepted, reloaded.State)
	require.NotNil(t, reloaded.BuyerID)
	assert.Equal(t, bob.ID, *reloaded.BuyerID)
	assert.Equal(t, 95000.0, reloaded.SellingPrice)
}

func TestAcceptOfferIdempotent(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 95000, 7)
	require.NoError(t, err)

	_, err = AcceptOffer(db, offer.ID)
	require.NoError(t, err)
	again, err := AcceptOffer(db, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusAccepted, again.Status)
}

func TestAcceptFinalizedOffer(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	bob := seedPartner(t, db, "Bob")
	carol := seedPartner(t, db, "Carol")

	refused, err := PlaceOffer(db, property.ID, bob.ID, 95000, 7)
	require.NoError(t, err)
	winner, err := PlaceOffer(db, property.ID, carol.ID, 96000, 7)
	require.NoError(t, err)

	_, err = AcceptOffer(db, winner.ID)
	require.NoError(t, err)

	// Accepting the refused sibling must not steal the sale
	_, err = AcceptOffer(db, refused.ID)
	assert.True(t, IsPolicyViolation(err))

	var reloaded models.Offer
	require.NoError(t, db.First(&reloaded, winner.ID).Error)
	assert.Equal(t, models.OfferStatusAccepted, reloaded.Status)

	var reloadedProperty models.Property
	require.NoError(t, db.First(&reloadedProperty, property.ID).Error)
	require.NotNil(t, reloadedProperty.BuyerID)
	assert.Equal(t, carol.ID, *reloadedProperty.BuyerID)
	assert.Equal(t, 96000.0, reloadedProperty.SellingPrice)

	expired := seedOffer(t, db, property.ID, bob.ID, 97000, models.OfferStatusExpired, time.Now())
	_, err = AcceptOffer(db, expired.ID)
	assert.True(t, IsPolicyViolation(err), "expired offers stay final")
}

func TestAcceptOfferOnSoldProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 95000, 7)
	require.NoError(t, err)
	require.NoError(t, db.Model(property).Update("state", models.PropertyStateSold).Error)

	_, err = AcceptOffer(db, offer.ID)
	assert.True(t, IsPolicyViolation(err))

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Equal(t, models.PropertyStateSold, reloaded.State, "a sold property never leaves sold through an offer")
}

func TestAcceptOfferBelowFloor(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 85000, 7)
	require.NoError(t, err)

	_, err = AcceptOffer(db, offer.ID)
	assert.True(t, IsValidationError(err), "offers under 90 percent of the expected price cannot be accepted")

	var reloaded models.Offer
	require.NoError(t, db.First(&reloaded, offer.ID).Error)
	assert.Equal(t, models.OfferStatusDraft, reloaded.Status)
}

func TestRefuseOfferIdempotent(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	offer, err := PlaceOffer(db, property.ID, partner.ID, 95000, 7)
	require.NoError(t, err)

	refused, err := RefuseOffer(db, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusRefused, refused.Status)

	again, err := RefuseOffer(db, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusRefused, again.Status)
}

func TestUpdateOfferValidity(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	offer := seedOffer(t, db, property.ID, partner.ID, 95000, models.OfferStatusDraft, created)

	updated, err := UpdateOfferValidity(db, offer.ID, 14)
	require.NoError(t, err)
	assert.Equal(t, 14, updated.Validity)
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), updated.DateDeadline)

	_, err = UpdateOfferValidity(db, offer.ID, models.MaxOfferValidityDays+1)
	assert.True(t, IsValidationError(err))
}

func TestUpdateOfferDeadline(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")
	created := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	offer := seedOffer(t, db, property.ID, partner.ID, 95000, models.OfferStatusDraft, created)

	updated, err := UpdateOfferDeadline(db, offer.ID, time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 21, updated.Validity, "validity must be recomputed from the new deadline")

	// A deadline beyond the validity cap is rejected
	_, err = UpdateOfferDeadline(db, offer.ID, created.AddDate(0, 0, models.MaxOfferValidityDays+5))
	assert.True(t, IsValidationError(err))
}

func TestSweepExpiredOffers(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Bungalow", 100000)
	partner := seedPartner(t, db, "Bob")

	stale := seedOffer(t, db, property.ID, partner.ID, 91000,
		models.OfferStatusDraft, time.Now().AddDate(0, 0, -31))
	fresh := seedOffer(t, db, property.ID, partner.ID, 92000,
		models.OfferStatusDraft, time.Now().AddDate(0, 0, -29))
	settled := seedOffer(t, db, property.ID, partner.ID, 93000,
		models.OfferStatusAccepted, time.Now().AddDate(0, 0, -40))

	expired, err := SweepExpiredOffers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	var reloaded models.Offer
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.OfferStatusExpired, reloaded.Status)
	reloaded = models.Offer{}
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, models.OfferStatusDraft, reloaded.Status, "offers under 30 days old stay live")
	reloaded = models.Offer{}
	require.NoError(t, db.First(&reloaded, settled.ID).Error)
	assert.Equal(t, models.OfferStatusAccepted, reloaded.Status, "settled offers are never expired")

	// The sweep is idempotent
	expired, err = SweepExpiredOffers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), expired)
}

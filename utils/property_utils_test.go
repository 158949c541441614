package utils

import (
	"testing"
	"time"

	"github.com/Govind-619/EstateSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPropertySoldCreatesInvoice(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	buyer := seedPartner(t, db, "Bob")

	// Simulate a prior accepted offer
	require.NoError(t, db.Model(property).Updates(map[string]interface{}{
		"buyer_id":      buyer.ID,
		"selling_price": 100000,
		"state":         models.PropertyStateOfferAccepted,
	}).Error)

	sold, err := MarkPropertySold(db, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStateSold, sold.State)
	require.NotNil(t, sold.SoldDate)

	var invoice models.Invoice
	require.NoError(t, db.Preload("Lines").Where("property_id = ?", property.ID).First(&invoice).Error)
	assert.Equal(t, "INV-000001", invoice.Number)
	assert.Equal(t, buyer.ID, invoice.PartnerID)
	require.Len(t, invoice.Lines, 3)
	assert.InDelta(t, 6000.0, invoice.Lines[0].PriceUnit, 0.001, "commission is 6 percent of the sale price")
	assert.InDelta(t, 100.0, invoice.Lines[1].PriceUnit, 0.001)
	assert.InDelta(t, 100000.0, invoice.Lines[2].PriceUnit, 0.001)
	assert.InDelta(t, 106100.0, invoice.Total, 0.001)
}

func TestMarkPropertySoldWithoutBuyer(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)

	sold, err := MarkPropertySold(db, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStateSold, sold.State)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Where("property_id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count, "no invoice without a buyer and a price")
}

func TestMarkPropertySoldFromCancelled(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	require.NoError(t, db.Model(property).Update("state", models.PropertyStateCancelled).Error)

	_, err := MarkPropertySold(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestCancelProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)

	cancelled, err := CancelProperty(db, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStateCancelled, cancelled.State)
}

func TestCancelSoldProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	require.NoError(t, db.Model(property).Update("state", models.PropertyStateSold).Error)

	_, err := CancelProperty(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestAcceptHighestOfferBreaksTiesByAge(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	bob := seedPartner(t, db, "Bob")
	carol := seedPartner(t, db, "Carol")
	dave := seedPartner(t, db, "Dave")

	now := time.Now()
	low := seedOffer(t, db, property.ID, bob.ID, 95000, models.OfferStatusDraft, now)
	older := seedOffer(t, db, property.ID, carol.ID, 98000, models.OfferStatusDraft, now)
	younger := seedOffer(t, db, property.ID, dave.ID, 98000, models.OfferStatusDraft, now)

	sold, err := AcceptHighestOffer(db, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStateSold, sold.State)
	require.NotNil(t, sold.BuyerID)
	assert.Equal(t, carol.ID, *sold.BuyerID, "ties on price go to the oldest offer")
	assert.Equal(t, 98000.0, sold.SellingPrice)
	require.NotNil(t, sold.SoldDate)

	var reloaded models.Offer
	require.NoError(t, db.First(&reloaded, older.ID).Error)
	assert.Equal(t, models.OfferStatusAccepted, reloaded.Status)
	reloaded = models.Offer{}
	require.NoError(t, db.First(&reloaded, younger.ID).Error)
	assert.Equal(t, models.OfferStatusRefused, reloaded.Status)
	reloaded = models.Offer{}
	require.NoError(t, db.First(&reloaded, low.ID).Error)
	assert.Equal(t, models.OfferStatusRefused, reloaded.Status)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Where("property_id = ?", property.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAcceptHighestOfferWithoutOffers(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)

	_, err := AcceptHighestOffer(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestAcceptHighestOfferOnSoldProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	require.NoError(t, db.Model(property).Update("state", models.PropertyStateSold).Error)

	_, err := AcceptHighestOffer(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestAcceptHighestOfferBelowFloor(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	bob := seedPartner(t, db, "Bob")
	seedOffer(t, db, property.ID, bob.ID, 80000, models.OfferStatusDraft, time.Now())

	_, err := AcceptHighestOffer(db, property.ID)
	assert.True(t, IsValidationError(err))

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Equal(t, models.PropertyStateNew, reloaded.State)
}

func TestCancelAcceptHighestOffer(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)
	bob := seedPartner(t, db, "Bob")
	seedOffer(t, db, property.ID, bob.ID, 95000, models.OfferStatusDraft, time.Now())

	_, err := AcceptHighestOffer(db, property.ID)
	require.NoError(t, err)

	restored, err := CancelAcceptHighestOffer(db, property.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStateNew, restored.State)
	assert.Nil(t, restored.BuyerID)
	assert.Equal(t, 0.0, restored.SellingPrice)
	assert.Nil(t, restored.SoldDate)

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.Nil(t, reloaded.BuyerID)
	assert.Equal(t, 0.0, reloaded.SellingPrice)
}

func TestCancelAcceptHighestOfferOnUnsoldProperty(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 100000)

	_, err := CancelAcceptHighestOffer(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestApplyDiscount(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Villa", 200000)

	discounted, err := ApplyDiscount(db, property.ID)
	require.NoError(t, err)
	assert.InDelta(t, 180000.0, discounted.ExpectedPrice, 0.001)
	assert.InDelta(t, 200000.0, discounted.OriginalPrice, 0.001)
	assert.True(t, discounted.DiscountApplied)

	_, err = ApplyDiscount(db, property.ID)
	assert.True(t, IsPolicyViolation(err), "the discount can only be applied once")

	restored, err := CancelDiscount(db, property.ID)
	require.NoError(t, err)
	assert.InDelta(t, 200000.0, restored.ExpectedPrice, 0.001)
	assert.False(t, restored.DiscountApplied)

	_, err = CancelDiscount(db, property.ID)
	assert.True(t, IsPolicyViolation(err))
}

func TestApplyDiscountPriceFloor(t *testing.T) {
	db := setupTestDB(t)
	property := seedProperty(t, db, "Shed", 1050)

	_, err := ApplyDiscount(db, property.ID)
	assert.True(t, IsValidationError(err), "discounted price under 1000 is rejected")

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, property.ID).Error)
	assert.InDelta(t, 1050.0, reloaded.ExpectedPrice, 0.001, "a rejected discount leaves the price untouched")
	assert.False(t, reloaded.DiscountApplied)

	// 1200 discounts to exactly 1080, above the floor
	boundary := seedProperty(t, db, "Cabin", 1200)
	discounted, err := ApplyDiscount(db, boundary.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1080.0, discounted.ExpectedPrice, 0.001)
}

func TestDeletePropertyGuards(t *testing.T) {
	db := setupTestDB(t)
	bob := seedPartner(t, db, "Bob")

	fresh := seedProperty(t, db, "Villa", 100000)
	require.NoError(t, DeleteProperty(db, fresh.ID))

	active := seedProperty(t, db, "Loft", 100000)
	_, err := PlaceOffer(db, active.ID, bob.ID, 95000, 7)
	require.NoError(t, err)
	err = DeleteProperty(db, active.ID)
	assert.True(t, IsPolicyViolation(err), "a property with a live offer cannot be deleted")

	// Cancelling unblocks deletion and takes the offers along
	_, err = CancelProperty(db, active.ID)
	require.NoError(t, err)
	require.NoError(t, DeleteProperty(db, active.ID))

	var count int64
	require.NoError(t, db.Model(&models.Offer{}).Where("property_id = ?", active.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMassUpdatePropertyState(t *testing.T) {
	db := setupTestDB(t)
	first := seedProperty(t, db, "Villa", 100000)
	second := seedProperty(t, db, "Loft", 150000)

	updated, err := MassUpdatePropertyState(db, []uint{first.ID, second.ID}, models.PropertyStateCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var reloaded models.Property
	require.NoError(t, db.First(&reloaded, second.ID).Error)
	assert.Equal(t, models.PropertyStateCancelled, reloaded.State)

	_, err = MassUpdatePropertyState(db, []uint{first.ID}, "vaporized")
	assert.True(t, IsValidationError(err))
}

func TestNextReference(t *testing.T) {
	db := setupTestDB(t)

	ref, err := NextReference(db, PropertySequence, PropertyRefPrefix)
	require.NoError(t, err)
	assert.Equal(t, "EST-000001", ref)

	ref, err = NextReference(db, PropertySequence, PropertyRefPrefix)
	require.NoError(t, err)
	assert.Equal(t, "EST-000002", ref)

	// Counters are independent per sequence name
	ref, err = NextReference(db, InvoiceSequence, InvoiceRefPrefix)
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", ref)
}

package utils

import (
	"testing"

	"github.com/Govind-619/EstateSphere/models"
	"github.com/stretchr/testify/assert"
)

func validProperty() *models.Property {
	return &models.Property{
		Name:          "Villa",
		ExpectedPrice: 100000,
		LivingArea:    80,
	}
}

func TestValidateProperty(t *testing.T) {
	assert.NoError(t, ValidateProperty(validProperty()))

	p := validProperty()
	p.Name = ""
	assert.True(t, IsValidationError(ValidateProperty(p)))

	p = validProperty()
	p.ExpectedPrice = 0
	assert.True(t, IsValidationError(ValidateProperty(p)))

	p = validProperty()
	p.SellingPrice = -1
	assert.True(t, IsValidationError(ValidateProperty(p)))

	p = validProperty()
	p.LivingArea = MinLivingArea - 1
	assert.True(t, IsValidationError(ValidateProperty(p)))

	p = validProperty()
	p.LivingArea = MinLivingArea
	assert.NoError(t, ValidateProperty(p), "the minimum living area itself is allowed")

	p = validProperty()
	p.GardenOrientation = "sideways"
	assert.True(t, IsValidationError(ValidateProperty(p)))
}

func TestCheckSellingPriceFloor(t *testing.T) {
	p := validProperty()
	assert.NoError(t, CheckSellingPriceFloor(p), "the floor only applies once an offer is accepted")

	p.Offers = []models.Offer{{Status: models.OfferStatusAccepted}}
	p.SellingPrice = 89999
	assert.True(t, IsValidationError(CheckSellingPriceFloor(p)))

	p.SellingPrice = 90000
	assert.NoError(t, CheckSellingPriceFloor(p), "exactly 90 percent is allowed")
}

func TestValidateOffer(t *testing.T) {
	assert.NoError(t, ValidateOffer(95000, 7))
	assert.NoError(t, ValidateOffer(95000, models.MaxOfferValidityDays))

	assert.True(t, IsValidationError(ValidateOffer(0, 7)))
	assert.True(t, IsValidationError(ValidateOffer(-1, 7)))
	assert.True(t, IsValidationError(ValidateOffer(95000, 0)))
	assert.True(t, IsValidationError(ValidateOffer(95000, models.MaxOfferValidityDays+1)))
}

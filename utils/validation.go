package utils

import (
	"fmt"
	"strings"

	"github.com/Govind-619/EstateSphere/models"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateProperty checks the data integrity rules on a property record
func ValidateProperty(p *models.Property) error {
	if p.Name == "" {
		return ValidationFailedError("Name is required")
	}
	if p.ExpectedPrice <= 0 {
		return ValidationFailedError("Expected price must be greater than 0.00")
	}
	if p.SellingPrice < 0 {
		return ValidationFailedError("Selling price must be strictly positive")
	}
	if p.LivingArea < MinLivingArea {
		return ValidationFailedError(fmt.Sprintf("Living area must be at least %d square meters", MinLivingArea))
	}
	if !models.ValidOrientation(p.GardenOrientation) {
		return ValidationFailedError("Garden orientation must be north, south, east or west")
	}
	return nil
}

// CheckSellingPriceFloor enforces the 90% floor once an offer has been accepted
func CheckSellingPriceFloor(p *models.Property) error {
	if !p.HasAcceptedOffer() {
		return nil
	}
	if p.SellingPrice < p.MinSellingPrice() {
		return ValidationFailedError("The selling price cannot be lower than 90% of the expected price")
	}
	return nil
}

// ValidateOffer checks the data integrity rules on an offer record
func ValidateOffer(price float64, validity int) error {
	if price <= 0 {
		return ValidationFailedError("Offer price must be strictly positive")
	}
	if validity <= 0 {
		return ValidationFailedError("Validity must be at least one day")
	}
	if validity > models.MaxOfferValidityDays {
		return ValidationFailedError(fmt.Sprintf("Deadline cannot be more than %d days from the creation date", models.MaxOfferValidityDays))
	}
	return nil
}

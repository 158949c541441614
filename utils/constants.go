package utils

// Application constants
const (
	// Application name
	AppName = "EstateSphere"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Commission charged on a sale (6% of the selling price)
	SaleCommissionRate = 0.06

	// Fixed administrative fee billed with every sale
	SaleAdminFee = 100.0

	// Discount applied to the expected price by the discount action
	DiscountRate = 0.10

	// Expected price floor after a discount
	DiscountPriceFloor = 1000.0

	// Selling price floor as a fraction of the expected price
	SellingPriceFloorRate = 0.9

	// Minimum living area in square meters
	MinLivingArea = 10

	// Sequence names
	PropertySequence = "property"
	InvoiceSequence  = "invoice"

	// Reference prefixes
	PropertyRefPrefix = "EST"
	InvoiceRefPrefix  = "INV"
)

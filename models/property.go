package models

import (
	"time"
)

// Property lifecycle states
const (
	PropertyStateNew           = "new"
	PropertyStateOfferReceived = "offer_received"
	PropertyStateOfferAccepted = "offer_accepted"
	PropertyStateSold          = "sold"
	PropertyStateCancelled     = "cancelled"
)

// Garden orientations
const (
	OrientationNorth = "north"
	OrientationSouth = "south"
	OrientationEast  = "east"
	OrientationWest  = "west"
)

// Property represents a real estate listing
type Property struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Reference         string     `gorm:"uniqueIndex" json:"reference"`
	Name              string     `gorm:"not null" json:"name"`
	Description       string     `json:"description"`
	Postcode          string     `json:"postcode"`
	DateAvailability  time.Time  `json:"date_availability"`
	ExpectedPrice     float64    `json:"expected_price"`
	SellingPrice      float64    `json:"selling_price"`
	OriginalPrice     float64    `json:"original_price"`
	DiscountApplied   bool       `json:"discount_applied" gorm:"default:false"`
	Bedrooms          int        `json:"bedrooms" gorm:"default:2"`
	LivingArea        int        `json:"living_area"`
	Facades           int        `json:"facades"`
	Garage            bool       `json:"garage"`
	Garden            bool       `json:"garden"`
	GardenArea        int        `json:"garden_area"`
	GardenOrientation string     `json:"garden_orientation"`
	ConstructionYear  int        `json:"construction_year"`
	State             string     `json:"state" gorm:"default:'new'"`
	Active            bool       `json:"active" gorm:"default:true"`
	IsFavourite       bool       `json:"is_favourite" gorm:"default:false"`
	SoldDate          *time.Time `json:"sold_date,omitempty"`

	PropertyTypeID *uint         `json:"property_type_id,omitempty"`
	PropertyType   *PropertyType `json:"property_type,omitempty" gorm:"foreignKey:PropertyTypeID"`
	SalesmanID     uint          `json:"salesman_id"`
	Salesman       User          `json:"salesman,omitempty" gorm:"foreignKey:SalesmanID"`
	BuyerID        *uint         `json:"buyer_id,omitempty"`
	Buyer          *Partner      `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Tags           []PropertyTag `json:"tags,omitempty" gorm:"many2many:property_tag_links"`
	Offers         []Offer       `json:"offers,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalArea returns living area plus garden area
func (p *Property) TotalArea() int {
	return p.LivingArea + p.GardenArea
}

// PricePerSqm returns the expected price per square meter, 0 when no area is set
func (p *Property) PricePerSqm() float64 {
	total := p.TotalArea()
	if total == 0 {
		return 0
	}
	return p.ExpectedPrice / float64(total)
}

// Age returns the building age in years, 0 when the construction year is unknown
func (p *Property) Age() int {
	if p.ConstructionYear == 0 {
		return 0
	}
	return time.Now().Year() - p.ConstructionYear
}

// BestPrice returns the highest offer price among the loaded offers, 0 without offers
func (p *Property) BestPrice() float64 {
	best := 0.0
	for _, offer := range p.Offers {
		if offer.Price > best {
			best = offer.Price
		}
	}
	return best
}

// AverageOfferPrice returns the mean offer price among the loaded offers, 0 without offers
func (p *Property) AverageOfferPrice() float64 {
	if len(p.Offers) == 0 {
		return 0
	}
	sum := 0.0
	for _, offer := range p.Offers {
		sum += offer.Price
	}
	return sum / float64(len(p.Offers))
}

// OfferCount returns the number of loaded offers
func (p *Property) OfferCount() int {
	return len(p.Offers)
}

// HasAcceptedOffer reports whether any loaded offer was accepted
func (p *Property) HasAcceptedOffer() bool {
	for _, offer := range p.Offers {
		if offer.Status == OfferStatusAccepted {
			return true
		}
	}
	return false
}

// MinSellingPrice returns the lowest selling price allowed once an offer is accepted
func (p *Property) MinSellingPrice() float64 {
	return p.ExpectedPrice * 0.9
}

// CanDelete reports whether the property may be removed in its current state
func (p *Property) CanDelete() bool {
	return p.State == PropertyStateNew || p.State == PropertyStateCancelled
}

// ApplyGardenDefaults resets garden fields when the garden flag is toggled.
// Enabling the garden seeds a 10 sqm north-facing plot, disabling clears both fields.
func (p *Property) ApplyGardenDefaults() {
	if p.Garden {
		if p.GardenArea == 0 {
			p.GardenArea = 10
		}
		if p.GardenOrientation == "" {
			p.GardenOrientation = OrientationNorth
		}
	} else {
		p.GardenArea = 0
		p.GardenOrientation = ""
	}
}

// ValidOrientation reports whether the given garden orientation is allowed. Empty is allowed.
func ValidOrientation(orientation string) bool {
	switch orientation {
	case "", OrientationNorth, OrientationSouth, OrientationEast, OrientationWest:
		return true
	}
	return false
}

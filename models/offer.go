package models

import (
	"time"
)

// Offer status constants
const (
	OfferStatusDraft    = "draft"
	OfferStatusAccepted = "accepted"
	OfferStatusRefused  = "refused"
	OfferStatusExpired  = "expired"
)

// MaxOfferValidityDays caps how far an offer deadline may be pushed out
const MaxOfferValidityDays = 60

// OfferExpiryDays is the age after which a draft offer goes stale
const OfferExpiryDays = 30

// Offer represents a buyer's bid on a property
type Offer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PropertyID   uint      `json:"property_id" gorm:"not null;index"`
	Property     Property  `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	PartnerID    uint      `json:"partner_id" gorm:"not null;index"`
	Partner      Partner   `json:"partner,omitempty" gorm:"foreignKey:PartnerID"`
	Price        float64   `json:"price"`
	Status       string    `json:"status" gorm:"default:'draft'"`
	Validity     int       `json:"validity" gorm:"default:7"`
	DateDeadline time.Time `json:"date_deadline"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsFinal reports whether the offer reached a terminal status
func (o *Offer) IsFinal() bool {
	switch o.Status {
	case OfferStatusAccepted, OfferStatusRefused, OfferStatusExpired:
		return true
	}
	return false
}

// baseDate is the calendar date the validity window counts from
func (o *Offer) baseDate() time.Time {
	base := o.CreatedAt
	if base.IsZero() {
		base = time.Now()
	}
	return truncateToDay(base)
}

// ComputeDeadline derives the deadline from the creation date and validity days
func (o *Offer) ComputeDeadline() {
	o.DateDeadline = o.baseDate().AddDate(0, 0, o.Validity)
}

// InverseDeadline derives validity days from an explicitly set deadline.
// The delta is taken between calendar dates, not wall-clock hours, so DST
// transitions inside the window do not shift the count.
func (o *Offer) InverseDeadline() {
	if o.DateDeadline.IsZero() {
		o.Validity = 0
		return
	}
	delta := utcDate(o.DateDeadline).Sub(utcDate(o.baseDate()))
	o.Validity = int(delta.Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package models

import (
	"time"
)

// Invoice is the billing document raised when a property is sold
type Invoice struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Number     string        `gorm:"uniqueIndex" json:"number"`
	PropertyID uint          `json:"property_id" gorm:"not null;index"`
	Property   Property      `json:"-" gorm:"foreignKey:PropertyID"`
	PartnerID  uint          `json:"partner_id"`
	Partner    Partner       `json:"partner,omitempty" gorm:"foreignKey:PartnerID"`
	Total      float64       `json:"total"`
	Lines      []InvoiceLine `json:"lines" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// InvoiceLine is a single billed position on an invoice
type InvoiceLine struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	InvoiceID   uint    `json:"invoice_id" gorm:"not null;index"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" gorm:"default:1"`
	PriceUnit   float64 `json:"price_unit"`
}

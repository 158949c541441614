package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an estate agent in the system
type User struct {
	gorm.Model
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	LastLoginAt time.Time `json:"last_login_at"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:SalesmanID"`
}

// Partner represents a prospective buyer
type Partner struct {
	gorm.Model
	Name           string `gorm:"not null" json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	IsVIP          bool   `json:"is_vip" gorm:"default:false"`
	ManagerComment string `json:"manager_comment"`

	Offers []Offer `json:"offers,omitempty" gorm:"foreignKey:PartnerID"`
}

// PropertyType groups properties into categories such as house or apartment
type PropertyType struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Sequence int    `json:"sequence" gorm:"default:1"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:PropertyTypeID"`
}

// PropertyTag is a free-form label attached to properties
type PropertyTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Sequence is a named counter backing document reference numbers
type Sequence struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Value int64  `json:"value"`
}

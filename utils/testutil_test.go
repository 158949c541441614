package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite lives per connection, keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func seedAgent(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	agent := models.User{
		Email:     fmt.Sprintf("agent-%d@estatesphere.test", time.Now().UnixNano()),
		Password:  "not-a-real-hash",
		FirstName: "Alice",
		IsActive:  true,
	}
	require.NoError(t, db.Create(&agent).Error)
	return &agent
}

func seedPartner(t *testing.T, db *gorm.DB, name string) *models.Partner {
	t.Helper()

	partner := models.Partner{Name: name}
	require.NoError(t, db.Create(&partner).Error)
	return &partner
}

func seedProperty(t *testing.T, db *gorm.DB, name string, expectedPrice float64) *models.Property {
	t.Helper()

	agent := seedAgent(t, db)
	property := models.Property{
		Reference:     fmt.Sprintf("EST-%d", time.Now().UnixNano()),
		Name:          name,
		ExpectedPrice: expectedPrice,
		LivingArea:    80,
		Bedrooms:      2,
		State:         models.PropertyStateNew,
		Active:        true,
		SalesmanID:    agent.ID,
	}
	require.NoError(t, db.Create(&property).Error)
	return &property
}

// seedOffer inserts an offer directly, bypassing the bid rules
func seedOffer(t *testing.T, db *gorm.DB, propertyID, partnerID uint, price float64, status string, createdAt time.Time) *models.Offer {
	t.Helper()

	offer := models.Offer{
		PropertyID: propertyID,
		PartnerID:  partnerID,
		Price:      price,
		Status:     status,
		Validity:   7,
		CreatedAt:  createdAt,
	}
	offer.ComputeDeadline()
	require.NoError(t, db.Create(&offer).Error)
	return &offer
}

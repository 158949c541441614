package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDeadline(t *testing.T) {
	created := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	offer := Offer{CreatedAt: created, Validity: 7}
	offer.ComputeDeadline()
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), offer.DateDeadline)
}

func TestComputeDeadlineWithoutCreationDate(t *testing.T) {
	offer := Offer{Validity: 7}
	offer.ComputeDeadline()

	expected := time.Now().AddDate(0, 0, 7)
	assert.Equal(t, expected.Year(), offer.DateDeadline.Year())
	assert.Equal(t, expected.YearDay(), offer.DateDeadline.YearDay())
}

func TestInverseDeadline(t *testing.T) {
	created := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	offer := Offer{CreatedAt: created}
	offer.DateDeadline = time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	offer.InverseDeadline()
	assert.Equal(t, 7, offer.Validity)
}

func TestDeadlineRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	offer := Offer{CreatedAt: created, Validity: 7}
	offer.ComputeDeadline()
	offer.InverseDeadline()
	assert.Equal(t, 7, offer.Validity, "validity must survive the deadline round trip")

	offer.DateDeadline = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	offer.InverseDeadline()
	assert.Equal(t, 14, offer.Validity)
	offer.ComputeDeadline()
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), offer.DateDeadline)
}

func TestDeadlineRoundTripAcrossClockChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward on 2025-03-09 makes this week an hour short of 7*24h
	offer := Offer{CreatedAt: time.Date(2025, 3, 8, 10, 0, 0, 0, loc), Validity: 7}
	offer.ComputeDeadline()
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, loc), offer.DateDeadline)
	offer.InverseDeadline()
	assert.Equal(t, 7, offer.Validity)

	// Fall back on 2025-11-02 makes the week an hour long
	offer = Offer{CreatedAt: time.Date(2025, 11, 1, 10, 0, 0, 0, loc), Validity: 7}
	offer.ComputeDeadline()
	offer.InverseDeadline()
	assert.Equal(t, 7, offer.Validity)
}

func TestInverseDeadlineCleared(t *testing.T) {
	offer := Offer{CreatedAt: time.Now(), Validity: 7}
	offer.DateDeadline = time.Time{}
	offer.InverseDeadline()
	assert.Equal(t, 0, offer.Validity)
}

func TestIsFinal(t *testing.T) {
	assert.False(t, (&Offer{Status: OfferStatusDraft}).IsFinal())
	assert.True(t, (&Offer{Status: OfferStatusAccepted}).IsFinal())
	assert.True(t, (&Offer{Status: OfferStatusRefused}).IsFinal())
	assert.True(t, (&Offer{Status: OfferStatusExpired}).IsFinal())
}

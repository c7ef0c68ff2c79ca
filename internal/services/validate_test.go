package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
)

func validListingDraft() *models.ListingDraft {
	return &models.ListingDraft{
		Title:           "Hilltop Bungalow",
		Description:     "Quiet bungalow with a garden",
		Price:           4200000,
		Location:        "Porvorim",
		TransactionKind: models.TransactionSale,
		PropertyKind:    "bungalow",
		Bedrooms:        3,
		Bathrooms:       2,
		AreaSqFt:        2000,
	}
}

func validSubmissionDraft() *models.SubmissionDraft {
	return &models.SubmissionDraft{
		OwnerName:       "Maria Fernandes",
		Email:           "maria@example.com",
		Phone:           "+91 98765 43210",
		Title:           "Riverside Apartment",
		Description:     "Two-bedroom apartment by the river",
		Location:        "Panaji",
		TransactionKind: models.TransactionRent,
		PropertyKind:    "apartment",
		Bedrooms:        2,
		Bathrooms:       1,
		AreaSqFt:        900,
		Price:           35000,
	}
}

func TestValidateListingDraft_Valid(t *testing.T) {
	assert.NoError(t, ValidateListingDraft(validListingDraft()))
}

func TestValidateListingDraft_ReportsAllViolations(t *testing.T) {
	d := validListingDraft()
	d.Title = ""
	d.Price = 0
	d.TransactionKind = "lease"
	d.Bedrooms = 0

	err := ValidateListingDraft(d)
	require.Error(t, err)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "price")
	assert.Contains(t, ve.Fields, "type")
	assert.Contains(t, ve.Fields, "bedrooms")
	assert.NotContains(t, ve.Fields, "location")
}

func TestValidateListingDraft_LandLikeKindsSkipRoomCounts(t *testing.T) {
	for _, kind := range []string{"land", "commercial", "warehouse"} {
		t.Run(kind, func(t *testing.T) {
			d := validListingDraft()
			d.PropertyKind = kind
			d.Bedrooms = 0
			d.Bathrooms = 0
			assert.NoError(t, ValidateListingDraft(d))
		})
	}

	// A dwelling kind still requires room counts.
	d := validListingDraft()
	d.Bedrooms = 0
	d.Bathrooms = 0
	err := ValidateListingDraft(d)
	require.Error(t, err)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "bedrooms")
	assert.Contains(t, ve.Fields, "bathrooms")
}

func TestValidateListingDraft_NegativeRoomCountsOnLand(t *testing.T) {
	d := validListingDraft()
	d.PropertyKind = "land"
	d.Bedrooms = -1

	err := ValidateListingDraft(d)
	require.Error(t, err)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "bedrooms")
}

func TestValidateSubmissionDraft_Valid(t *testing.T) {
	assert.NoError(t, ValidateSubmissionDraft(validSubmissionDraft()))
}

func TestValidateSubmissionDraft_ContactFields(t *testing.T) {
	d := validSubmissionDraft()
	d.OwnerName = "  "
	d.Email = "not-an-email"
	d.Phone = ""

	err := ValidateSubmissionDraft(d)
	require.Error(t, err)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "ownerName")
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "phone")
}

package services

import (
	"strings"

	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
)

// validateListingFields checks the structural invariants shared by listings
// and submissions. Every violation is collected so the caller sees the full
// picture in one ValidationError, never just the first failure.
func validateListingFields(fields map[string]string, title, description, location, transactionKind, propertyKind string, price, area float64, bedrooms, bathrooms int) {
	if strings.TrimSpace(title) == "" {
		fields["title"] = "is required"
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = "is required"
	}
	if strings.TrimSpace(location) == "" {
		fields["location"] = "is required"
	}
	if transactionKind != models.TransactionSale && transactionKind != models.TransactionRent {
		fields["type"] = "must be sale or rent"
	}
	if strings.TrimSpace(propertyKind) == "" {
		fields["propertyType"] = "is required"
	}
	if price <= 0 {
		fields["price"] = "must be greater than zero"
	}
	if area <= 0 {
		fields["area"] = "must be greater than zero"
	}
	// Land and commercial kinds conventionally carry no room counts.
	if !models.IsLandLikeKind(propertyKind) {
		if bedrooms < 1 {
			fields["bedrooms"] = "must be at least 1"
		}
		if bathrooms < 1 {
			fields["bathrooms"] = "must be at least 1"
		}
	} else {
		if bedrooms < 0 {
			fields["bedrooms"] = "must not be negative"
		}
		if bathrooms < 0 {
			fields["bathrooms"] = "must not be negative"
		}
	}
}

// ValidateListingDraft checks an admin-entered listing draft.
func ValidateListingDraft(d *models.ListingDraft) error {
	fields := map[string]string{}
	validateListingFields(fields, d.Title, d.Description, d.Location, d.TransactionKind, d.PropertyKind, d.Price, d.AreaSqFt, d.Bedrooms, d.Bathrooms)
	if len(fields) > 0 {
		return errs.NewValidation(fields)
	}
	return nil
}

// ValidateSubmissionDraft checks a public "list your property" form,
// including the submitter's contact details.
func ValidateSubmissionDraft(d *models.SubmissionDraft) error {
	fields := map[string]string{}
	validateListingFields(fields, d.Title, d.Description, d.Location, d.TransactionKind, d.PropertyKind, d.Price, d.AreaSqFt, d.Bedrooms, d.Bathrooms)
	if strings.TrimSpace(d.OwnerName) == "" {
		fields["ownerName"] = "is required"
	}
	if !strings.Contains(d.Email, "@") {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(d.Phone) == "" {
		fields["phone"] = "is required"
	}
	if len(fields) > 0 {
		return errs.NewValidation(fields)
	}
	return nil
}

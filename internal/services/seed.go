package services

import (
	"context"
	"fmt"
	"log"

	"goahomes/api/internal/models"
)

// sampleListings are the starter catalog entries for fresh deployments and
// demos.
var sampleListings = []models.ListingDraft{
	{
		Title:           "Luxury Villa in Candolim",
		Description:     "Stunning 4-bedroom villa with private pool, just minutes from Candolim beach. Modern amenities and spacious interiors.",
		Price:           25000000,
		Location:        "Candolim, North Goa",
		TransactionKind: models.TransactionSale,
		PropertyKind:    "villa",
		Bedrooms:        4,
		Bathrooms:       4,
		AreaSqFt:        3500,
		Amenities:       []string{"Private Pool", "Garden", "Parking", "Security"},
		Featured:        true,
	},
	{
		Title:           "Modern Apartment in Panaji",
		Description:     "Contemporary 2-bedroom apartment in the heart of Panaji with river views and easy access to the city center.",
		Price:           45000,
		Location:        "Panaji, North Goa",
		TransactionKind: models.TransactionRent,
		PropertyKind:    "apartment",
		Bedrooms:        2,
		Bathrooms:       2,
		AreaSqFt:        1200,
		Amenities:       []string{"River View", "Lift", "Gym", "Covered Parking"},
	},
	{
		Title:           "Portuguese House in Margao",
		Description:     "Charming heritage house with traditional Goan architecture, large courtyard and mature fruit trees.",
		Price:           12000000,
		Location:        "Margao, South Goa",
		TransactionKind: models.TransactionSale,
		PropertyKind:    "house",
		Bedrooms:        3,
		Bathrooms:       2,
		AreaSqFt:        2800,
		Amenities:       []string{"Courtyard", "Garden", "Heritage Architecture"},
	},
}

// SeedSampleListings inserts the sample catalog if no listings exist yet.
// Returns the number of listings created.
func SeedSampleListings(ctx context.Context, svc IListingService) (int, error) {
	existing, err := svc.ListListings(ctx, models.ListingQuery{Page: 1, PageSize: 1})
	if err != nil {
		return 0, fmt.Errorf("failed to check catalog before seeding: %w", err)
	}
	if existing.TotalCount > 0 {
		log.Printf("Catalog already has %d listings, skipping seed.", existing.TotalCount)
		return 0, nil
	}

	created := 0
	for i := range sampleListings {
		draft := sampleListings[i]
		if _, err := svc.CreateListing(ctx, &draft); err != nil {
			return created, fmt.Errorf("failed to seed listing %q: %w", draft.Title, err)
		}
		created++
	}
	log.Printf("Seeded %d sample listings.", created)
	return created, nil
}

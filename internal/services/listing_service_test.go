package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"goahomes/api/internal/config"
	"goahomes/api/internal/errs"
	"goahomes/api/internal/models"
	"goahomes/api/internal/utils"
)

func setupTestDBListing(t *testing.T, dbName string) *mongo.Database {
	return utils.SetupTestDB(t, dbName, "listings")
}

func sampleDraft(title string) *models.ListingDraft {
	return &models.ListingDraft{
		Title:           title,
		Description:     "A lovely property near the beach",
		Price:           2500000,
		Location:        "Candolim, North Goa",
		TransactionKind: models.TransactionSale,
		PropertyKind:    "villa",
		Bedrooms:        3,
		Bathrooms:       2,
		AreaSqFt:        1800,
	}
}

func TestListingService_CRUD(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_crud")
	svc := NewListingService(db, &config.Config{})
	ctx := context.Background()

	created, err := svc.CreateListing(ctx, sampleDraft("Sea View Villa"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Sea View Villa", created.Title)
	assert.False(t, created.ID.IsZero())
	assert.NotNil(t, created.Images)
	assert.NotNil(t, created.Amenities)

	found, err := svc.FindListingByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Title, found.Title)

	_, err = svc.FindListingByID(ctx, utils.NewSixID())
	assert.True(t, errs.IsNotFound(err))

	update := sampleDraft("Sea View Villa (Renovated)")
	update.Price = 2750000
	updated, err := svc.UpdateListing(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Sea View Villa (Renovated)", updated.Title)
	assert.Equal(t, 2750000.0, updated.Price)
	assert.Equal(t, created.ID, updated.ID)

	_, err = svc.UpdateListing(ctx, utils.NewSixID(), update)
	assert.True(t, errs.IsNotFound(err))

	err = svc.DeleteListing(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.FindListingByID(ctx, created.ID)
	assert.True(t, errs.IsNotFound(err))

	err = svc.DeleteListing(ctx, created.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestListingService_CreateRejectsInvalidDraft(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_invalid")
	svc := NewListingService(db, &config.Config{})

	draft := sampleDraft("")
	draft.Price = 0
	_, err := svc.CreateListing(context.Background(), draft)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "price")
}

// seedCatalog inserts a deterministic mix of listings for filter tests.
func seedCatalog(t *testing.T, svc IListingService) map[string]*models.Listing {
	t.Helper()
	ctx := context.Background()
	byTitle := map[string]*models.Listing{}

	drafts := []*models.ListingDraft{
		{
			Title: "Candolim Villa", Description: "Beachside villa", Price: 5000000,
			Location: "Candolim, North Goa", TransactionKind: models.TransactionSale,
			PropertyKind: "villa", Bedrooms: 4, Bathrooms: 3, AreaSqFt: 2400, Featured: true,
		},
		{
			Title: "Panaji Apartment", Description: "City apartment", Price: 1500000,
			Location: "Panaji", TransactionKind: models.TransactionSale,
			PropertyKind: "apartment", Bedrooms: 2, Bathrooms: 2, AreaSqFt: 950,
		},
		{
			Title: "Margao House", Description: "Family house", Price: 30000,
			Location: "Margao, South Goa", TransactionKind: models.TransactionRent,
			PropertyKind: "house", Bedrooms: 3, Bathrooms: 2, AreaSqFt: 1600,
		},
		{
			Title: "Anjuna Land", Description: "Plot with road access", Price: 8000000,
			Location: "Anjuna", TransactionKind: models.TransactionSale,
			PropertyKind: "land", AreaSqFt: 5000,
		},
	}
	for _, d := range drafts {
		l, err := svc.CreateListing(ctx, d)
		require.NoError(t, err)
		byTitle[l.Title] = l
	}
	return byTitle
}

func titlesOf(items []models.Listing) []string {
	titles := make([]string, 0, len(items))
	for _, l := range items {
		titles = append(titles, l.Title)
	}
	return titles
}

func TestListingService_ListFilters(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_filters")
	svc := NewListingService(db, &config.Config{})
	ctx := context.Background()
	seedCatalog(t, svc)

	baseQuery := func() models.ListingQuery {
		return models.ListingQuery{Page: 1, PageSize: DefaultPageSize}
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		res, err := svc.ListListings(ctx, baseQuery())
		require.NoError(t, err)
		assert.Equal(t, int64(4), res.TotalCount)
		assert.Len(t, res.Items, 4)
		assert.Equal(t, 1, res.PageCount)
	})

	t.Run("transaction kind", func(t *testing.T) {
		q := baseQuery()
		kind := models.TransactionRent
		q.TransactionKind = &kind
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Margao House"}, titlesOf(res.Items))
	})

	t.Run("location substring is case-insensitive", func(t *testing.T) {
		q := baseQuery()
		loc := "goa"
		q.Location = &loc
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.TotalCount)
		assert.ElementsMatch(t, []string{"Candolim Villa", "Margao House"}, titlesOf(res.Items))
	})

	t.Run("property kind exact match case-insensitive", func(t *testing.T) {
		q := baseQuery()
		kind := "VILLA"
		q.PropertyKind = &kind
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Candolim Villa"}, titlesOf(res.Items))
	})

	t.Run("price range bounds are inclusive", func(t *testing.T) {
		q := baseQuery()
		min, max := 1500000.0, 5000000.0
		q.MinPrice = &min
		q.MaxPrice = &max
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Candolim Villa", "Panaji Apartment"}, titlesOf(res.Items))
	})

	t.Run("minimum bedrooms", func(t *testing.T) {
		q := baseQuery()
		beds := 3
		q.MinBedrooms = &beds
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Candolim Villa", "Margao House"}, titlesOf(res.Items))
	})

	t.Run("featured only", func(t *testing.T) {
		q := baseQuery()
		q.FeaturedOnly = true
		res, err := svc.ListListings(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, []string{"Candolim Villa"}, titlesOf(res.Items))
	})

	t.Run("combined filters narrow monotonically", func(t *testing.T) {
		q := baseQuery()
		kind := models.TransactionSale
		q.TransactionKind = &kind
		broad, err := svc.ListListings(ctx, q)
		require.NoError(t, err)

		beds := 4
		q.MinBedrooms = &beds
		narrow, err := svc.ListListings(ctx, q)
		require.NoError(t, err)

		assert.LessOrEqual(t, narrow.TotalCount, broad.TotalCount)
		broadTitles := titlesOf(broad.Items)
		for _, title := range titlesOf(narrow.Items) {
			assert.Contains(t, broadTitles, title)
		}
	})
}

func TestListingService_ListOrdering(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_ordering")
	svc := NewListingService(db, &config.Config{})
	ctx := context.Background()

	// Inserted oldest first; the catalog must return featured first, then
	// newest first.
	for i, tc := range []struct {
		title    string
		featured bool
	}{
		{"Oldest Plain", false},
		{"Featured Early", true},
		{"Middle Plain", false},
		{"Featured Late", true},
		{"Newest Plain", false},
	} {
		d := sampleDraft(tc.title)
		d.Featured = tc.featured
		_, err := svc.CreateListing(ctx, d)
		require.NoError(t, err)
		if i < 4 {
			time.Sleep(5 * time.Millisecond)
		}
	}

	q := models.ListingQuery{Page: 1, PageSize: DefaultPageSize}
	res, err := svc.ListListings(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Featured Late", "Featured Early",
		"Newest Plain", "Middle Plain", "Oldest Plain",
	}, titlesOf(res.Items))

	// Same query again returns the same order.
	again, err := svc.ListListings(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, titlesOf(res.Items), titlesOf(again.Items))
}

func TestListingService_Pagination(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_pagination")
	svc := NewListingService(db, &config.Config{})
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.CreateListing(ctx, sampleDraft(fmt.Sprintf("Listing %d", i)))
		require.NoError(t, err)
	}

	page1, err := svc.ListListings(ctx, models.ListingQuery{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), page1.TotalCount)
	assert.Equal(t, 3, page1.PageCount)
	assert.Len(t, page1.Items, 3)
	assert.Equal(t, 1, page1.Page)

	page3, err := svc.ListListings(ctx, models.ListingQuery{Page: 3, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1)
	assert.Equal(t, 3, page3.Page)

	// Pages never overlap or skip.
	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		res, err := svc.ListListings(ctx, models.ListingQuery{Page: page, PageSize: 3})
		require.NoError(t, err)
		for _, title := range titlesOf(res.Items) {
			assert.False(t, seen[title], "listing %q appeared on more than one page", title)
			seen[title] = true
		}
	}
	assert.Len(t, seen, 7)

	// Beyond-range pages return empty items but correct totals.
	beyond, err := svc.ListListings(ctx, models.ListingQuery{Page: 50, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(7), beyond.TotalCount)
	assert.Equal(t, 3, beyond.PageCount)
	assert.Equal(t, 50, beyond.Page)
}

func TestListingService_EmptyCatalog(t *testing.T) {
	db := setupTestDBListing(t, "testdb_listing_service_empty")
	svc := NewListingService(db, &config.Config{})

	res, err := svc.ListListings(context.Background(), models.ListingQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(0), res.TotalCount)
	assert.Equal(t, 0, res.PageCount)
}

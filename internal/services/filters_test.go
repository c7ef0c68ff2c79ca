package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListingFilters_Defaults(t *testing.T) {
	q := NormalizeListingFilters(url.Values{}, 0, 0)

	assert.Nil(t, q.TransactionKind)
	assert.Nil(t, q.Location)
	assert.Nil(t, q.PropertyKind)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Nil(t, q.MinBedrooms)
	assert.False(t, q.FeaturedOnly)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)
}

func TestNormalizeListingFilters_AllSentinel(t *testing.T) {
	q := NormalizeListingFilters(url.Values{
		"type":         {"all"},
		"location":     {"All"},
		"propertyType": {"ALL"},
	}, DefaultPageSize, MaxPageSize)

	assert.Nil(t, q.TransactionKind)
	assert.Nil(t, q.Location)
	assert.Nil(t, q.PropertyKind)
}

func TestNormalizeListingFilters_ValidFilters(t *testing.T) {
	q := NormalizeListingFilters(url.Values{
		"type":         {"sale"},
		"location":     {"Panaji"},
		"propertyType": {"villa"},
		"minPrice":     {"1000000"},
		"maxPrice":     {"5000000"},
		"bedrooms":     {"2"},
		"featured":     {"true"},
		"page":         {"3"},
		"limit":        {"25"},
	}, DefaultPageSize, MaxPageSize)

	require.NotNil(t, q.TransactionKind)
	assert.Equal(t, "sale", *q.TransactionKind)
	require.NotNil(t, q.Location)
	assert.Equal(t, "Panaji", *q.Location)
	require.NotNil(t, q.PropertyKind)
	assert.Equal(t, "villa", *q.PropertyKind)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 1000000.0, *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 5000000.0, *q.MaxPrice)
	require.NotNil(t, q.MinBedrooms)
	assert.Equal(t, 2, *q.MinBedrooms)
	assert.True(t, q.FeaturedOnly)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestNormalizeListingFilters_SwapsReversedPriceBounds(t *testing.T) {
	q := NormalizeListingFilters(url.Values{
		"minPrice": {"5000000"},
		"maxPrice": {"1000000"},
	}, DefaultPageSize, MaxPageSize)

	require.NotNil(t, q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 1000000.0, *q.MinPrice)
	assert.Equal(t, 5000000.0, *q.MaxPrice)
}

func TestNormalizeListingFilters_MalformedNumericsIgnored(t *testing.T) {
	q := NormalizeListingFilters(url.Values{
		"minPrice": {"cheap"},
		"maxPrice": {"-50"},
		"bedrooms": {"many"},
	}, DefaultPageSize, MaxPageSize)

	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Nil(t, q.MinBedrooms)
}

func TestNormalizeListingFilters_UnknownTransactionKindIgnored(t *testing.T) {
	q := NormalizeListingFilters(url.Values{"type": {"lease"}}, DefaultPageSize, MaxPageSize)
	assert.Nil(t, q.TransactionKind)
}

func TestNormalizeListingFilters_ConfiguredBounds(t *testing.T) {
	// Configured bounds replace the package defaults.
	q := NormalizeListingFilters(url.Values{}, 20, 50)
	assert.Equal(t, 20, q.PageSize)

	q = NormalizeListingFilters(url.Values{"limit": {"80"}}, 20, 50)
	assert.Equal(t, 50, q.PageSize)

	// Unset configuration falls back to the package defaults.
	q = NormalizeListingFilters(url.Values{"limit": {"500"}}, 0, 0)
	assert.Equal(t, MaxPageSize, q.PageSize)
}

func TestNormalizeListingFilters_PageAndLimitClamping(t *testing.T) {
	cases := []struct {
		name     string
		page     string
		limit    string
		wantPage int
		wantSize int
	}{
		{"negative page", "-2", "10", 1, 10},
		{"zero page", "0", "10", 1, 10},
		{"non-numeric page", "abc", "10", 1, 10},
		{"limit above max", "1", "500", 1, MaxPageSize},
		{"limit below min", "1", "0", 1, DefaultPageSize},
		{"non-numeric limit", "1", "lots", 1, DefaultPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := NormalizeListingFilters(url.Values{
				"page":  {tc.page},
				"limit": {tc.limit},
			}, DefaultPageSize, MaxPageSize)
			assert.Equal(t, tc.wantPage, q.Page)
			assert.Equal(t, tc.wantSize, q.PageSize)
		})
	}
}

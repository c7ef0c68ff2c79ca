package services

import (
	"net/url"
	"strconv"
	"strings"

	"goahomes/api/internal/models"
)

// Fallback bounds for the catalog page size, used when the configured values
// are absent. Values outside the bounds are clamped, not rejected.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// pageSizeBounds sanitizes configured page-size bounds, falling back to the
// package defaults for unset or nonsensical values.
func pageSizeBounds(defaultSize, maxSize int) (int, int) {
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	if maxSize < defaultSize {
		maxSize = MaxPageSize
	}
	return defaultSize, maxSize
}

// categorical filter sentinel meaning "no constraint"
const filterAll = "all"

// NormalizeListingFilters canonicalizes raw search parameters into a
// ListingQuery. It is a pure, total function: malformed input degrades to
// "no constraint" instead of failing, because a public search form must
// never crash a query over a bad value. Page-size bounds come from
// configuration (DEFAULT_PAGE_SIZE / MAX_PAGE_SIZE); zero values fall back
// to the package defaults.
func NormalizeListingFilters(values url.Values, defaultPageSize, maxPageSize int) models.ListingQuery {
	defaultPageSize, maxPageSize = pageSizeBounds(defaultPageSize, maxPageSize)

	q := models.ListingQuery{
		Page:     1,
		PageSize: defaultPageSize,
	}

	if kind := normalizeCategorical(values.Get("type")); kind != "" {
		// Unknown transaction kinds degrade to unconstrained, same as the
		// leniency rule for numerics.
		if kind == models.TransactionSale || kind == models.TransactionRent {
			q.TransactionKind = &kind
		}
	}

	if loc := normalizeCategorical(values.Get("location")); loc != "" {
		q.Location = &loc
	}

	if kind := normalizeCategorical(values.Get("propertyType")); kind != "" {
		q.PropertyKind = &kind
	}

	q.MinPrice = parsePrice(values.Get("minPrice"))
	q.MaxPrice = parsePrice(values.Get("maxPrice"))
	// User-entered price ranges are commonly swapped by accident; correct
	// silently rather than reject. Deliberate policy, not a bug.
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		q.MinPrice, q.MaxPrice = q.MaxPrice, q.MinPrice
	}

	if beds, err := strconv.Atoi(values.Get("bedrooms")); err == nil && beds > 0 {
		q.MinBedrooms = &beds
	}

	q.FeaturedOnly = values.Get("featured") == "true"

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}

	if size, err := strconv.Atoi(values.Get("limit")); err == nil {
		switch {
		case size < 1:
			// keep default
		case size > maxPageSize:
			q.PageSize = maxPageSize
		default:
			q.PageSize = size
		}
	}

	return q
}

// normalizeCategorical trims a categorical filter value and maps the "all"
// sentinel (and absence) to empty, meaning unconstrained.
func normalizeCategorical(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, filterAll) {
		return ""
	}
	return v
}

// parsePrice parses a price bound; unparsable or negative values count as
// absent.
func parsePrice(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

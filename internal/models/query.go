package models

// ListingQuery is a normalized, validated catalog filter. Nil pointer fields
// mean "no constraint". Produced only by the filter normalizer; handlers and
// services never build one from raw input directly.
type ListingQuery struct {
	TransactionKind *string
	Location        *string
	PropertyKind    *string
	MinPrice        *float64
	MaxPrice        *float64
	MinBedrooms     *int
	FeaturedOnly    bool
	Page            int // 1-based
	PageSize        int
}

// PagedResult is one page of the filtered catalog.
type PagedResult struct {
	Items      []Listing `json:"properties"`
	TotalCount int64     `json:"total"`
	Page       int       `json:"page"`
	PageCount  int       `json:"totalPages"`
}

// SubmissionPage is one page of the moderation queue.
type SubmissionPage struct {
	Items      []Submission `json:"submissions"`
	TotalCount int64        `json:"total"`
	Page       int          `json:"page"`
	PageCount  int          `json:"totalPages"`
}

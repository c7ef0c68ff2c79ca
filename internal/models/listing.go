package models

import (
	"time"
)

// Transaction kinds.
const (
	TransactionSale = "sale"
	TransactionRent = "rent"
)

// Recommended property kinds. The field is an open string; these are the
// values the public forms offer.
var PropertyKinds = []string{
	"apartment", "villa", "house", "commercial", "land", "penthouse",
	"studio", "duplex", "bungalow", "farmhouse", "beach house", "townhouse",
	"condominium", "office space", "retail space", "warehouse", "industrial",
}

// Property kinds for which bedroom/bathroom counts are not expected.
var landLikeKinds = map[string]bool{
	"land":         true,
	"commercial":   true,
	"office space": true,
	"retail space": true,
	"warehouse":    true,
	"industrial":   true,
}

// IsLandLikeKind reports whether the property kind conventionally has no
// bedroom/bathroom counts (plots, commercial space).
func IsLandLikeKind(kind string) bool {
	return landLikeKinds[kind]
}

// VideoWalkthrough points at a hosted walkthrough video for a listing.
type VideoWalkthrough struct {
	Provider  string `bson:"provider" json:"provider"` // "youtube", "vimeo" or "custom"
	URL       string `bson:"url" json:"url"`
	EmbedID   string `bson:"embed_id,omitempty" json:"embedId,omitempty"`
	Thumbnail string `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
}

// Listing is a published, publicly visible property record.
type Listing struct {
	Base             `bson:",inline"`
	Title            string            `bson:"title" json:"title"`
	Description      string            `bson:"description" json:"description"`
	Price            float64           `bson:"price" json:"price"`
	Location         string            `bson:"location" json:"location"`
	TransactionKind  string            `bson:"type" json:"type"` // sale or rent
	PropertyKind     string            `bson:"property_type" json:"propertyType"`
	Bedrooms         int               `bson:"bedrooms" json:"bedrooms"`
	Bathrooms        int               `bson:"bathrooms" json:"bathrooms"`
	AreaSqFt         float64           `bson:"area" json:"area"`
	Images           []string          `bson:"images" json:"images"`
	Amenities        []string          `bson:"amenities" json:"amenities"`
	Featured         bool              `bson:"featured" json:"featured"`
	VideoWalkthrough *VideoWalkthrough `bson:"video_walkthrough,omitempty" json:"videoWalkthrough,omitempty"`
	FloorPlan        string            `bson:"floor_plan,omitempty" json:"floorPlan,omitempty"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updatedAt"`
}

// ListingDraft carries the writable fields of a listing for create/update.
type ListingDraft struct {
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Price            float64           `json:"price"`
	Location         string            `json:"location"`
	TransactionKind  string            `json:"type"`
	PropertyKind     string            `json:"propertyType"`
	Bedrooms         int               `json:"bedrooms"`
	Bathrooms        int               `json:"bathrooms"`
	AreaSqFt         float64           `json:"area"`
	Images           []string          `json:"images"`
	Amenities        []string          `json:"amenities"`
	Featured         bool              `json:"featured"`
	VideoWalkthrough *VideoWalkthrough `json:"videoWalkthrough,omitempty"`
	FloorPlan        string            `json:"floorPlan,omitempty"`
}

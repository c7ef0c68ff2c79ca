package models

import (
	"time"

	"goahomes/api/internal/utils"
)

// Submission statuses. Any status may be set by an admin decision; the
// machine is deliberately not one-way so moderation mistakes stay fixable.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// ValidSubmissionStatus reports whether s is one of the enumerated statuses.
func ValidSubmissionStatus(s string) bool {
	return s == SubmissionPending || s == SubmissionApproved || s == SubmissionRejected
}

// Submission is a user-proposed listing awaiting an admin decision.
type Submission struct {
	Base            `bson:",inline"`
	OwnerName       string       `bson:"owner_name" json:"ownerName"`
	Email           string       `bson:"email" json:"email"`
	Phone           string       `bson:"phone" json:"phone"`
	Title           string       `bson:"title" json:"title"`
	Description     string       `bson:"description" json:"description"`
	Location        string       `bson:"location" json:"location"`
	TransactionKind string       `bson:"type" json:"type"`
	PropertyKind    string       `bson:"property_type" json:"propertyType"`
	Bedrooms        int          `bson:"bedrooms" json:"bedrooms"`
	Bathrooms       int          `bson:"bathrooms" json:"bathrooms"`
	AreaSqFt        float64      `bson:"area" json:"area"`
	Price           float64      `bson:"price" json:"price"`
	Amenities       []string     `bson:"amenities" json:"amenities"`
	Status          string       `bson:"status" json:"status"`
	AdminNotes      string       `bson:"admin_notes,omitempty" json:"adminNotes,omitempty"`
	ListingID       *utils.SixID `bson:"listing_id,omitempty" json:"listingId,omitempty"` // set once published
	CreatedAt       time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updatedAt"`
}

// SubmissionDraft carries the fields of the public "list your property" form.
type SubmissionDraft struct {
	OwnerName       string   `json:"ownerName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Title           string   `json:"propertyTitle"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	TransactionKind string   `json:"type"`
	PropertyKind    string   `json:"propertyType"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	AreaSqFt        float64  `json:"area"`
	Price           float64  `json:"price"`
	Amenities       []string `json:"amenities"`
}

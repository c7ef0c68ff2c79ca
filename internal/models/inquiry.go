package models

import (
	"time"

	"goahomes/api/internal/utils"
)

// Inquiry is a buyer/renter question about a specific listing.
type Inquiry struct {
	Base      `bson:",inline"`
	ListingID utils.SixID `bson:"listing_id" json:"listingId"`
	Name      string      `bson:"name" json:"name"`
	Email     string      `bson:"email" json:"email"`
	Phone     string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string      `bson:"message" json:"message"`
	CreatedAt time.Time   `bson:"created_at" json:"createdAt"`
	Notified  bool        `bson:"notified" json:"-"` // set once the notification email is sent
}

// InquiryDraft carries the fields of the public inquiry form.
type InquiryDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

package models

import (
	"goahomes/api/internal/utils"
)

// Base carries the identifier shared by all stored documents.
type Base struct {
	ID utils.SixID `bson:"_id,omitempty" json:"id,omitempty"`
}

func (m *Base) GenIDIfEmpty() {
	if m.ID.IsZero() {
		m.ID = utils.NewSixID()
	}
}

func (m *Base) SetID(id utils.SixID) {
	m.ID = id
}

func NewBase() Base {
	return Base{ID: utils.NewSixID()}
}

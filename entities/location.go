package entities

import (
	"github.com/google/uuid"
)

// Location is the canonical row for one physical dining site. Two rows may share a
// name only when they are more than 100 m apart; the unique index closes the
// concurrent create race on the exact same tuple.
type Location struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"index;uniqueIndex:idx_locations_identity" json:"name"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `gorm:"uniqueIndex:idx_locations_identity" json:"latitude"`
	Longitude   float64   `gorm:"uniqueIndex:idx_locations_identity" json:"longitude"`

	Menus []*Menu `gorm:"foreignKey:LocationID"`
	Timestamp
}

package entities

import (
	"github.com/google/uuid"
)

// InformationSource records where a food's nutrition numbers came from.
// First writer wins: rows are created lazily by name and never updated.
type InformationSource struct {
	ID                         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                       string    `gorm:"uniqueIndex" json:"name"`
	Description                string    `json:"description,omitempty"`
	ErrorConfidenceDescription string    `json:"error_confidence_description,omitempty"`

	Timestamp
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// SynthesizedEntry holds one category's extracted content for a contact.
// The at-most-one-entry-per-(contact, category) convention is enforced by
// the edit path, not by a storage constraint.
type SynthesizedEntry struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContactId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	RawNoteId  *uuid.UUID `gorm:"type:uuid;index"` // null for manually-entered categories
	RawNote    *RawNote   `gorm:"foreignKey:RawNoteId;constraint:OnDelete:SET NULL"`
	Category   string     `gorm:"type:varchar(100);not null"`
	Content    string     `gorm:"type:text;not null"`
	Confidence float64    `gorm:"not null;default:0"` // 0.0 to 1.0
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (SynthesizedEntry) TableName() string {
	return "synthesized_entries"
}

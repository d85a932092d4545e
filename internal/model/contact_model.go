package model

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName           string    `gorm:"type:varchar(255);not null"`
	Tier               int       `gorm:"not null;default:2"` // 1, 2, or 3
	VectorCollectionId string    `gorm:"type:varchar(100)"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`

	// Cascade: deleting a contact removes its notes and entries
	RawNotes           []RawNote          `gorm:"foreignKey:ContactId;constraint:OnDelete:CASCADE"`
	SynthesizedEntries []SynthesizedEntry `gorm:"foreignKey:ContactId;constraint:OnDelete:CASCADE"`
}

func (Contact) TableName() string {
	return "contacts"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RawNote rows are append-only. There is no update or single delete path;
// rows disappear only when their contact is cascade-deleted.
type RawNote struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContactId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Content   string            `gorm:"type:text;not null"`
	Source    string            `gorm:"type:varchar(50);not null;default:'manual'"` // 'manual', 'import', 'manual_edit'
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (RawNote) TableName() string {
	return "raw_notes"
}

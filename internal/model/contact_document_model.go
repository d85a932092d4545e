package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ContactDocument is one vector-store document. Rows sharing a CollectionId
// form the logical per-contact collection.
type ContactDocument struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollectionId string          `gorm:"type:varchar(100);not null;index"`
	ContactId    uuid.UUID       `gorm:"type:uuid;not null;index"`
	NoteId       uuid.UUID       `gorm:"type:uuid;not null"`
	Document     string          `gorm:"type:text;not null"`
	Embedding    pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensionality
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}

func (ContactDocument) TableName() string {
	return "contact_documents"
}

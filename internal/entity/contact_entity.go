package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	FullName           string
	Tier               int
	VectorCollectionId string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

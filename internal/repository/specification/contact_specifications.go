package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByContactID struct {
	ContactID uuid.UUID
}

func (s ByContactID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("contact_id = ?", s.ContactID)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

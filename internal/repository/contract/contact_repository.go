package contract

import (
	"context"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	// Delete removes the contact row; raw notes and synthesized entries go
	// with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SynthesizedEntryRepository interface {
	Create(ctx context.Context, entry *entity.SynthesizedEntry) error
	Update(ctx context.Context, entry *entity.SynthesizedEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByContactAndCategory removes every entry in one category for a
	// contact, optionally sparing one entry (the survivor of an in-place
	// update). Returns the number of rows removed.
	DeleteByContactAndCategory(ctx context.Context, contactId uuid.UUID, category string, spare *uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SynthesizedEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SynthesizedEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

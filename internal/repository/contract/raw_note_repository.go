package contract

import (
	"context"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/repository/specification"
)

// RawNoteRepository intentionally has no Update or Delete: raw notes form an
// append-only audit log and are removed only by contact cascade.
type RawNoteRepository interface {
	Create(ctx context.Context, note *entity.RawNote) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RawNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RawNote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

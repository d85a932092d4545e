package unitofwork

import (
	"context"

	"personal-crm-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContactRepository() contract.ContactRepository
	RawNoteRepository() contract.RawNoteRepository
	SynthesizedEntryRepository() contract.SynthesizedEntryRepository
}

package service

import (
	"context"
	"sort"
	"strings"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/repository/contract"
	"personal-crm-be/internal/repository/specification"
	"personal-crm-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories for service tests. Specifications are interpreted
// by type-switching on the concrete spec structs the services use.

type fakeStore struct {
	users    []*entity.User
	contacts []*entity.Contact
	notes    []*entity.RawNote
	entries  []*entity.SynthesizedEntry
}

type specFilter struct {
	id        *uuid.UUID
	userId    *uuid.UUID
	contactId *uuid.UUID
	category  *string
	email     *string
	orderBy   []specification.OrderBy
}

func parseSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.OwnedByUser:
			id := v.UserID
			f.userId = &id
		case specification.ByContactID:
			id := v.ContactID
			f.contactId = &id
		case specification.ByCategory:
			c := v.Category
			f.category = &c
		case specification.ByEmail:
			e := v.Email
			f.email = &e
		case specification.OrderBy:
			f.orderBy = append(f.orderBy, v)
		}
	}
	return f
}

// --- users ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	u := *user
	r.store.users = append(r.store.users, &u)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f := parseSpecs(specs)
	for _, u := range r.store.users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		if f.email != nil && u.Email != *f.email {
			continue
		}
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

// --- contacts ---

type fakeContactRepo struct{ store *fakeStore }

func (r *fakeContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	c := *contact
	r.store.contacts = append(r.store.contacts, &c)
	return nil
}

func (r *fakeContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	for i, c := range r.store.contacts {
		if c.Id == contact.Id {
			u := *contact
			r.store.contacts[i] = &u
			return nil
		}
	}
	return nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.contacts[:0]
	for _, c := range r.store.contacts {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	r.store.contacts = kept

	// Mirror ON DELETE CASCADE.
	keptNotes := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.ContactId != id {
			keptNotes = append(keptNotes, n)
		}
	}
	r.store.notes = keptNotes

	keptEntries := r.store.entries[:0]
	for _, e := range r.store.entries {
		if e.ContactId != id {
			keptEntries = append(keptEntries, e)
		}
	}
	r.store.entries = keptEntries
	return nil
}

func (r *fakeContactRepo) matches(c *entity.Contact, f specFilter) bool {
	if f.id != nil && c.Id != *f.id {
		return false
	}
	if f.userId != nil && c.UserId != *f.userId {
		return false
	}
	return true
}

func (r *fakeContactRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Contact, error) {
	f := parseSpecs(specs)
	for _, c := range r.store.contacts {
		if r.matches(c, f) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error) {
	f := parseSpecs(specs)
	var out []*entity.Contact
	for _, c := range r.store.contacts {
		if r.matches(c, f) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortContacts(out, f.orderBy)
	return out, nil
}

func (r *fakeContactRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func sortContacts(contacts []*entity.Contact, orderBy []specification.OrderBy) {
	sort.SliceStable(contacts, func(i, j int) bool {
		for _, o := range orderBy {
			var less, diff bool
			switch o.Field {
			case "tier":
				less, diff = contacts[i].Tier < contacts[j].Tier, contacts[i].Tier != contacts[j].Tier
			case "full_name":
				cmp := strings.Compare(contacts[i].FullName, contacts[j].FullName)
				less, diff = cmp < 0, cmp != 0
			}
			if diff {
				if o.Desc {
					return !less
				}
				return less
			}
		}
		return false
	})
}

// --- raw notes ---

type fakeRawNoteRepo struct{ store *fakeStore }

func (r *fakeRawNoteRepo) Create(ctx context.Context, note *entity.RawNote) error {
	n := *note
	r.store.notes = append(r.store.notes, &n)
	return nil
}

func (r *fakeRawNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RawNote, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeRawNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RawNote, error) {
	f := parseSpecs(specs)
	var out []*entity.RawNote
	for _, n := range r.store.notes {
		if f.id != nil && n.Id != *f.id {
			continue
		}
		if f.contactId != nil && n.ContactId != *f.contactId {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRawNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- synthesized entries ---

type fakeEntryRepo struct{ store *fakeStore }

func (r *fakeEntryRepo) Create(ctx context.Context, entry *entity.SynthesizedEntry) error {
	e := *entry
	r.store.entries = append(r.store.entries, &e)
	return nil
}

func (r *fakeEntryRepo) Update(ctx context.Context, entry *entity.SynthesizedEntry) error {
	for i, e := range r.store.entries {
		if e.Id == entry.Id {
			u := *entry
			r.store.entries[i] = &u
			return nil
		}
	}
	return nil
}

func (r *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.entries[:0]
	for _, e := range r.store.entries {
		if e.Id != id {
			kept = append(kept, e)
		}
	}
	r.store.entries = kept
	return nil
}

func (r *fakeEntryRepo) DeleteByContactAndCategory(ctx context.Context, contactId uuid.UUID, category string, spare *uuid.UUID) (int64, error) {
	var removed int64
	kept := r.store.entries[:0]
	for _, e := range r.store.entries {
		if e.ContactId == contactId && e.Category == category && (spare == nil || e.Id != *spare) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.store.entries = kept
	return removed, nil
}

func (r *fakeEntryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SynthesizedEntry, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeEntryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SynthesizedEntry, error) {
	f := parseSpecs(specs)
	var out []*entity.SynthesizedEntry
	for _, e := range r.store.entries {
		if f.id != nil && e.Id != *f.id {
			continue
		}
		if f.contactId != nil && e.ContactId != *f.contactId {
			continue
		}
		if f.category != nil && e.Category != *f.category {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeEntryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- unit of work ---

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) ContactRepository() contract.ContactRepository {
	return &fakeContactRepo{store: u.store}
}

func (u *fakeUnitOfWork) RawNoteRepository() contract.RawNoteRepository {
	return &fakeRawNoteRepo{store: u.store}
}

func (u *fakeUnitOfWork) SynthesizedEntryRepository() contract.SynthesizedEntryRepository {
	return &fakeEntryRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- vector store ---

type fakeVectorStore struct {
	stored     []string
	history    string
	deletedIds []string
}

func (v *fakeVectorStore) StoreNote(ctx context.Context, collectionID string, contactID, noteID uuid.UUID, content string) error {
	v.stored = append(v.stored, content)
	return nil
}

func (v *fakeVectorStore) RelevantHistory(ctx context.Context, collectionID string, query string, n int) string {
	return v.history
}

func (v *fakeVectorStore) DeleteCollection(ctx context.Context, collectionID string) error {
	v.deletedIds = append(v.deletedIds, collectionID)
	return nil
}

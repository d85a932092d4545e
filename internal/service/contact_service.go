package service

import (
	"context"
	"strings"
	"time"

	"personal-crm-be/internal/dto"
	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/pkg/serverutils"
	"personal-crm-be/internal/repository/specification"
	"personal-crm-be/internal/repository/unitofwork"
	"personal-crm-be/pkg/audit"
	"personal-crm-be/pkg/vectorstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IContactService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ContactListItem, error)
	Detail(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactDetailResponse, error)
	Logs(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactLogsResponse, error)
	EditCategories(ctx context.Context, userId uuid.UUID, contactId uuid.UUID, req *dto.EditCategoriesRequest) (*dto.EditCategoriesResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) error
}

type contactService struct {
	uowFactory  unitofwork.RepositoryFactory
	vectorStore vectorstore.Store
	logger      *zap.Logger
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, vectorStore vectorstore.Store, logger *zap.Logger) IContactService {
	return &contactService{
		uowFactory:  uowFactory,
		vectorStore: vectorStore,
		logger:      logger.Named("contact_service"),
	}
}

func (s *contactService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error) {
	tier := req.Tier
	if tier < 1 || tier > 3 {
		tier = 2
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, serverutils.NewBadRequestError("Full name cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact := entity.Contact{
		Id:                 uuid.New(),
		UserId:             userId,
		FullName:           fullName,
		Tier:               tier,
		VectorCollectionId: "contact_" + uuid.NewString()[:8],
		CreatedAt:          time.Now(),
	}
	if err := uow.ContactRepository().Create(ctx, &contact); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to create contact", err)
	}

	s.logger.Info("created contact",
		zap.String("contact_id", contact.Id.String()),
		zap.Int("tier", contact.Tier))

	return &dto.CreateContactResponse{
		Id:       contact.Id,
		FullName: contact.FullName,
		Tier:     contact.Tier,
	}, nil
}

func (s *contactService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ContactListItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contacts, err := uow.ContactRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "tier"},
		specification.OrderBy{Field: "full_name"},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to list contacts", err)
	}

	items := make([]*dto.ContactListItem, len(contacts))
	for i, c := range contacts {
		items[i] = &dto.ContactListItem{
			Id:        c.Id,
			FullName:  c.FullName,
			Tier:      c.Tier,
			CreatedAt: c.CreatedAt,
		}
	}
	return items, nil
}

func (s *contactService) Detail(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := s.findOwnedContact(ctx, uow, userId, contactId)
	if err != nil {
		return nil, err
	}

	entries, err := uow.SynthesizedEntryRepository().FindAll(ctx,
		specification.ByContactID{ContactID: contactId},
		specification.OrderBy{Field: "category"},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to load categories", err)
	}

	categorized := make(map[string][]dto.CategoryEntry)
	for _, e := range entries {
		categorized[e.Category] = append(categorized[e.Category], dto.CategoryEntry{
			Id:         e.Id,
			Content:    e.Content,
			Confidence: e.Confidence,
			CreatedAt:  e.CreatedAt,
		})
	}

	return &dto.ContactDetailResponse{
		Id:              contact.Id,
		FullName:        contact.FullName,
		Tier:            contact.Tier,
		CreatedAt:       contact.CreatedAt,
		CategorizedData: categorized,
	}, nil
}

func (s *contactService) Logs(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactLogsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := s.findOwnedContact(ctx, uow, userId, contactId)
	if err != nil {
		return nil, err
	}

	notes, err := uow.RawNoteRepository().FindAll(ctx,
		specification.ByContactID{ContactID: contactId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to load notes", err)
	}

	entries, err := uow.SynthesizedEntryRepository().FindAll(ctx,
		specification.ByContactID{ContactID: contactId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to load entries", err)
	}

	entriesByNote := make(map[uuid.UUID][]dto.ContactLogEntry)
	for _, e := range entries {
		if e.RawNoteId == nil {
			continue
		}
		entriesByNote[*e.RawNoteId] = append(entriesByNote[*e.RawNoteId], dto.ContactLogEntry{
			Category:   e.Category,
			Content:    e.Content,
			Confidence: e.Confidence,
			CreatedAt:  e.CreatedAt,
		})
	}

	logNotes := make([]dto.ContactLogNote, len(notes))
	for i, n := range notes {
		logNotes[i] = dto.ContactLogNote{
			Id:                 n.Id,
			Content:            n.Content,
			Source:             n.Source,
			Metadata:           n.Metadata,
			CreatedAt:          n.CreatedAt,
			SynthesizedEntries: entriesByNote[n.Id],
		}
	}

	return &dto.ContactLogsResponse{
		ContactId:   contactId,
		ContactName: contact.FullName,
		RawNotes:    logNotes,
		TotalNotes:  len(logNotes),
	}, nil
}

// EditCategories applies a batch of manual overrides to a contact's
// synthesized data. Manual edits always win: written entries carry
// confidence 1.0 and same-category siblings are removed, so at most one
// entry per category survives. The whole batch runs in one transaction and
// leaves a single manual_edit raw note describing the changes line by line.
func (s *contactService) EditCategories(ctx context.Context, userId uuid.UUID, contactId uuid.UUID, req *dto.EditCategoriesRequest) (*dto.EditCategoriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findOwnedContact(ctx, uow, userId, contactId); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to start transaction", err)
	}
	defer uow.Rollback()

	entryRepo := uow.SynthesizedEntryRepository()
	resp := &dto.EditCategoriesResponse{}
	var changeLines []string
	touched := make(map[string]struct{})

	for _, edit := range req.Edits {
		content := strings.TrimSpace(edit.Content)

		var existing *entity.SynthesizedEntry
		var err error
		if edit.EntryId != nil {
			existing, err = entryRepo.FindOne(ctx,
				specification.ByID{ID: *edit.EntryId},
				specification.ByContactID{ContactID: contactId},
			)
		} else {
			existing, err = entryRepo.FindOne(ctx,
				specification.ByContactID{ContactID: contactId},
				specification.ByCategory{Category: edit.Category},
				specification.OrderBy{Field: "created_at", Desc: true},
			)
		}
		if err != nil {
			return nil, serverutils.NewPersistenceError("Failed to look up entry", err)
		}

		oldContent := ""
		if existing != nil {
			oldContent = existing.Content
		}

		switch {
		case content == "" && edit.EntryId != nil:
			if existing == nil {
				return nil, serverutils.NewNotFoundError("Entry not found")
			}
			if err := entryRepo.Delete(ctx, existing.Id); err != nil {
				return nil, serverutils.NewPersistenceError("Failed to delete entry", err)
			}
			resp.Deleted++

		case content == "":
			removed, err := entryRepo.DeleteByContactAndCategory(ctx, contactId, edit.Category, nil)
			if err != nil {
				return nil, serverutils.NewPersistenceError("Failed to clear category", err)
			}
			resp.Deleted += int(removed)

		case existing != nil:
			existing.Category = edit.Category
			existing.Content = content
			existing.Confidence = 1.0
			if err := entryRepo.Update(ctx, existing); err != nil {
				return nil, serverutils.NewPersistenceError("Failed to update entry", err)
			}
			removed, err := entryRepo.DeleteByContactAndCategory(ctx, contactId, edit.Category, &existing.Id)
			if err != nil {
				return nil, serverutils.NewPersistenceError("Failed to remove stale entries", err)
			}
			resp.Updated++
			resp.Deleted += int(removed)

		default:
			entry := entity.SynthesizedEntry{
				Id:         uuid.New(),
				ContactId:  contactId,
				Category:   edit.Category,
				Content:    content,
				Confidence: 1.0,
				CreatedAt:  time.Now(),
			}
			if err := entryRepo.Create(ctx, &entry); err != nil {
				return nil, serverutils.NewPersistenceError("Failed to create entry", err)
			}
			resp.Created++
		}

		if line := audit.FormatCategoryChange(edit.Category, oldContent, content); line != "" {
			changeLines = append(changeLines, line)
		}
		touched[edit.Category] = struct{}{}
	}

	categories := make([]interface{}, 0, len(touched))
	for c := range touched {
		categories = append(categories, c)
	}
	auditNote := entity.RawNote{
		Id:        uuid.New(),
		ContactId: contactId,
		Content:   strings.Join(changeLines, "\n"),
		Source:    entity.NoteSourceManualEdit,
		Metadata: map[string]interface{}{
			"categories": categories,
			"edit_count": len(req.Edits),
		},
		CreatedAt: time.Now(),
	}
	if err := uow.RawNoteRepository().Create(ctx, &auditNote); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to record audit note", err)
	}
	resp.AuditNoteId = auditNote.Id

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to commit edits", err)
	}

	s.logger.Info("applied category edits",
		zap.String("contact_id", contactId.String()),
		zap.Int("updated", resp.Updated),
		zap.Int("deleted", resp.Deleted),
		zap.Int("created", resp.Created))
	return resp, nil
}

func (s *contactService) Delete(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := s.findOwnedContact(ctx, uow, userId, contactId)
	if err != nil {
		return err
	}

	// Cascade removes raw notes and synthesized entries with the contact row.
	if err := uow.ContactRepository().Delete(ctx, contactId); err != nil {
		return serverutils.NewPersistenceError("Failed to delete contact", err)
	}

	// Vector cleanup is best-effort and idempotent; the relational delete
	// already succeeded, so a failure here only leaves an orphan collection.
	if err := s.vectorStore.DeleteCollection(ctx, contact.VectorCollectionId); err != nil {
		s.logger.Warn("vector collection cleanup failed after contact delete",
			zap.String("contact_id", contactId.String()),
			zap.Error(err))
	}

	s.logger.Info("deleted contact", zap.String("contact_id", contactId.String()))
	return nil
}

func (s *contactService) findOwnedContact(ctx context.Context, uow unitofwork.UnitOfWork, userId, contactId uuid.UUID) (*entity.Contact, error) {
	contact, err := uow.ContactRepository().FindOne(ctx,
		specification.ByID{ID: contactId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to look up contact", err)
	}
	if contact == nil {
		return nil, serverutils.NewNotFoundError("Contact not found")
	}
	return contact, nil
}

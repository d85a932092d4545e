package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"personal-crm-be/internal/dto"
	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/pkg/serverutils"
	"personal-crm-be/internal/repository/specification"
	"personal-crm-be/internal/repository/unitofwork"
	"personal-crm-be/pkg/extraction"
	"personal-crm-be/pkg/vectorstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Synthesized content at or below this trimmed length is noise, not data.
const minEntryLength = 5

// Retrieval queries use only the leading words of the note to keep the
// embedding focused on the note's subject.
const retrievalQueryWords = 30

// Documents fetched per retrieval lookup.
const retrievalTopK = 3

type INoteService interface {
	ProcessNote(ctx context.Context, userId uuid.UUID, req *dto.ProcessNoteRequest) (*dto.ProcessNoteResponse, error)
	NotesForContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactNotesResponse, error)
}

type noteService struct {
	uowFactory  unitofwork.RepositoryFactory
	extractor   *extraction.Service
	vectorStore vectorstore.Store
	logger      *zap.Logger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, extractor *extraction.Service, vectorStore vectorstore.Store, logger *zap.Logger) INoteService {
	return &noteService{
		uowFactory:  uowFactory,
		extractor:   extractor,
		vectorStore: vectorStore,
		logger:      logger.Named("note_service"),
	}
}

// ProcessNote is the synthesis pipeline: persist the raw note, enrich the
// contact's vector collection, retrieve similar history, run the extraction
// chain and store one synthesized entry per surviving category. The raw note
// and its entries commit atomically; vector operations are best-effort and
// never fail the request.
func (s *noteService) ProcessNote(ctx context.Context, userId uuid.UUID, req *dto.ProcessNoteRequest) (*dto.ProcessNoteResponse, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, serverutils.NewBadRequestError("Note cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	contact, err := uow.ContactRepository().FindOne(ctx,
		specification.ByID{ID: req.ContactId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("Failed to look up contact", err)
	}
	if contact == nil {
		return nil, serverutils.NewNotFoundError("Contact not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to start transaction", err)
	}
	defer uow.Rollback()

	rawNote := entity.RawNote{
		Id:        uuid.New(),
		ContactId: contact.Id,
		Content:   note,
		Source:    entity.NoteSourceManual,
		CreatedAt: time.Now(),
	}
	if err := uow.RawNoteRepository().Create(ctx, &rawNote); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to save note", err)
	}

	if err := s.vectorStore.StoreNote(ctx, contact.VectorCollectionId, contact.Id, rawNote.Id, note); err != nil {
		s.logger.Warn("note not added to vector collection",
			zap.String("contact_id", contact.Id.String()),
			zap.Error(err))
	}

	// Retrieval runs after the store so earlier notes are searchable, but the
	// query excerpt keeps the fresh note from dominating its own context.
	history := s.vectorStore.RelevantHistory(ctx, contact.VectorCollectionId, firstWords(note, retrievalQueryWords), retrievalTopK)

	result := s.extractor.Analyze(ctx, note, contact.FullName, history)
	if len(result) == 0 {
		s.logger.Warn("extraction returned no categories, using heuristic fallback",
			zap.String("contact_id", contact.Id.String()))
		result = s.extractor.Fallback(ctx, note, contact.FullName)
	}
	result = extraction.DemoteOthers(result)

	synthesis := make([]dto.SynthesisItem, 0, len(result))
	for _, category := range sortedCategories(result) {
		cr := result[category]
		content := strings.TrimSpace(cr.Content)
		if len(content) <= minEntryLength {
			continue
		}
		entry := entity.SynthesizedEntry{
			Id:         uuid.New(),
			ContactId:  contact.Id,
			RawNoteId:  &rawNote.Id,
			Category:   category,
			Content:    content,
			Confidence: cr.Confidence,
			CreatedAt:  time.Now(),
		}
		if err := uow.SynthesizedEntryRepository().Create(ctx, &entry); err != nil {
			return nil, serverutils.NewPersistenceError("Failed to save synthesized entry", err)
		}
		synthesis = append(synthesis, dto.SynthesisItem{
			Category:   category,
			Content:    content,
			Confidence: cr.Confidence,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewPersistenceError("Failed to commit note", err)
	}

	s.logger.Info("processed note",
		zap.String("contact_id", contact.Id.String()),
		zap.String("raw_note_id", rawNote.Id.String()),
		zap.Int("categories", len(synthesis)),
		zap.Bool("rag_context_used", history != vectorstore.NoHistory))

	return &dto.ProcessNoteResponse{
		RawNoteId:       rawNote.Id,
		ContactId:       contact.Id,
		ContactName:     contact.FullName,
		Synthesis:       synthesis,
		CategoriesCount: len(synthesis),
		RagContextUsed:  history != vectorstore.NoHistory,
	}, nil
}

func (s *noteService) NotesForContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ContactNotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
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

	resp := &dto.ContactNotesResponse{
		ContactId:          contactId,
		ContactName:        contact.FullName,
		RawNotes:           make([]dto.RawNoteItem, len(notes)),
		SynthesizedEntries: make([]dto.SynthesizedEntryItem, len(entries)),
	}
	for i, n := range notes {
		resp.RawNotes[i] = dto.RawNoteItem{
			Id:        n.Id,
			Content:   n.Content,
			Source:    n.Source,
			CreatedAt: n.CreatedAt,
		}
	}
	for i, e := range entries {
		resp.SynthesizedEntries[i] = dto.SynthesizedEntryItem{
			Id:         e.Id,
			RawNoteId:  e.RawNoteId,
			Category:   e.Category,
			Content:    e.Content,
			Confidence: e.Confidence,
			CreatedAt:  e.CreatedAt,
		}
	}
	return resp, nil
}

// firstWords returns the first n whitespace-separated words of s.
func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

func sortedCategories(m extraction.CategoryMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package service

import (
	"context"
	"strings"
	"testing"

	"personal-crm-be/internal/dto"
	"personal-crm-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContactWorld(t *testing.T) (*fakeStore, *fakeVectorStore, IContactService, uuid.UUID) {
	t.Helper()
	store := &fakeStore{}
	vs := &fakeVectorStore{}
	svc := NewContactService(&fakeFactory{store: store}, vs, zap.NewNop())
	return store, vs, svc, uuid.New()
}

func seedContact(store *fakeStore, userId uuid.UUID, name string, tier int) uuid.UUID {
	id := uuid.New()
	store.contacts = append(store.contacts, &entity.Contact{
		Id:                 id,
		UserId:             userId,
		FullName:           name,
		Tier:               tier,
		VectorCollectionId: "contact_" + uuid.NewString()[:8],
	})
	return id
}

func seedEntry(store *fakeStore, contactId uuid.UUID, category, content string, confidence float64) uuid.UUID {
	id := uuid.New()
	store.entries = append(store.entries, &entity.SynthesizedEntry{
		Id:         id,
		ContactId:  contactId,
		Category:   category,
		Content:    content,
		Confidence: confidence,
	})
	return id
}

func TestCreateContactCoercesTier(t *testing.T) {
	tests := []struct {
		name     string
		tier     int
		wantTier int
	}{
		{"tier 1 kept", 1, 1},
		{"tier 3 kept", 3, 3},
		{"zero coerced to 2", 0, 2},
		{"out of range coerced to 2", 7, 2},
		{"negative coerced to 2", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, svc, userId := newContactWorld(t)
			resp, err := svc.Create(context.Background(), userId, &dto.CreateContactRequest{
				FullName: "Raj Patel",
				Tier:     tt.tier,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, resp.Tier)
			require.Len(t, store.contacts, 1)
			assert.True(t, strings.HasPrefix(store.contacts[0].VectorCollectionId, "contact_"))
		})
	}
}

func TestCreateContactRejectsBlankName(t *testing.T) {
	_, _, svc, userId := newContactWorld(t)
	_, err := svc.Create(context.Background(), userId, &dto.CreateContactRequest{FullName: "   "})
	assert.Error(t, err)
}

func TestListContactsOrdersByTierThenName(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	seedContact(store, userId, "Zoe", 2)
	seedContact(store, userId, "Anna", 2)
	seedContact(store, userId, "Max", 1)
	seedContact(store, uuid.New(), "Other Owner", 1)

	items, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Max", items[0].FullName)
	assert.Equal(t, "Anna", items[1].FullName)
	assert.Equal(t, "Zoe", items[2].FullName)
}

func TestDetailGroupsEntriesByCategory(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	seedEntry(store, contactId, "Goals", "Wants to relocate", 0.9)
	seedEntry(store, contactId, "Avocation", "Plays chess", 0.8)

	resp, err := svc.Detail(context.Background(), userId, contactId)
	require.NoError(t, err)
	assert.Len(t, resp.CategorizedData, 2)
	assert.Len(t, resp.CategorizedData["Goals"], 1)
}

func TestDeleteContactCascadesAndClearsVectors(t *testing.T) {
	store, vs, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	noteId := uuid.New()
	store.notes = append(store.notes, &entity.RawNote{Id: noteId, ContactId: contactId, Content: "note", Source: entity.NoteSourceManual})
	seedEntry(store, contactId, "Goals", "Wants to relocate", 0.9)

	err := svc.Delete(context.Background(), userId, contactId)
	require.NoError(t, err)

	assert.Empty(t, store.contacts)
	assert.Empty(t, store.notes)
	assert.Empty(t, store.entries)
	assert.Len(t, vs.deletedIds, 1)
}

func TestDeleteContactRequiresOwnership(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)

	err := svc.Delete(context.Background(), uuid.New(), contactId)
	assert.Error(t, err)
	assert.Len(t, store.contacts, 1)
}

func TestEditCategoriesUpdateOverwritesAndRemovesSiblings(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	keepId := seedEntry(store, contactId, "Goals", "Old goal", 0.7)
	seedEntry(store, contactId, "Goals", "Stale duplicate", 0.5)

	resp, err := svc.EditCategories(context.Background(), userId, contactId, &dto.EditCategoriesRequest{
		Edits: []dto.CategoryEdit{
			{Category: "Goals", Content: "Finish the pilot license", EntryId: &keepId},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Deleted)

	var goals []*entity.SynthesizedEntry
	for _, e := range store.entries {
		if e.Category == "Goals" {
			goals = append(goals, e)
		}
	}
	require.Len(t, goals, 1, "at most one entry per category after a manual edit")
	assert.Equal(t, keepId, goals[0].Id)
	assert.Equal(t, "Finish the pilot license", goals[0].Content)
	assert.Equal(t, 1.0, goals[0].Confidence, "manual edits carry full confidence")
}

func TestEditCategoriesCreateWhenCategoryEmpty(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)

	resp, err := svc.EditCategories(context.Background(), userId, contactId, &dto.EditCategoriesRequest{
		Edits: []dto.CategoryEdit{
			{Category: "Wellbeing", Content: "Recovering well after surgery"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Created)
	require.Len(t, store.entries, 1)
	assert.Equal(t, 1.0, store.entries[0].Confidence)
	assert.Nil(t, store.entries[0].RawNoteId, "manual entries have no source note")
}

func TestEditCategoriesDeleteWholeCategory(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	seedEntry(store, contactId, "Goals", "One", 0.7)
	seedEntry(store, contactId, "Goals", "Two", 0.6)
	seedEntry(store, contactId, "Social", "Kept", 0.8)

	resp, err := svc.EditCategories(context.Background(), userId, contactId, &dto.EditCategoriesRequest{
		Edits: []dto.CategoryEdit{
			{Category: "Goals", Content: ""},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Deleted)
	require.Len(t, store.entries, 1)
	assert.Equal(t, "Social", store.entries[0].Category)
}

func TestEditCategoriesWritesAuditNote(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	seedEntry(store, contactId, "Goals", "Old goal", 0.7)

	resp, err := svc.EditCategories(context.Background(), userId, contactId, &dto.EditCategoriesRequest{
		Edits: []dto.CategoryEdit{
			{Category: "Goals", Content: "New goal text"},
			{Category: "Social", Content: "Joined the climbing club"},
		},
	})
	require.NoError(t, err)

	require.Len(t, store.notes, 1, "one audit note per batch")
	note := store.notes[0]
	assert.Equal(t, entity.NoteSourceManualEdit, note.Source)
	assert.Equal(t, resp.AuditNoteId, note.Id)
	assert.Contains(t, note.Content, "[Goals] updated")
	assert.Contains(t, note.Content, "removed: Old goal")
	assert.Contains(t, note.Content, "added: New goal text")
	assert.Contains(t, note.Content, "[Social] created")
	assert.Equal(t, 2, note.Metadata["edit_count"])
}

func TestEditCategoriesDeleteByMissingEntryId(t *testing.T) {
	store, _, svc, userId := newContactWorld(t)
	contactId := seedContact(store, userId, "Maya Chen", 1)
	missing := uuid.New()

	_, err := svc.EditCategories(context.Background(), userId, contactId, &dto.EditCategoriesRequest{
		Edits: []dto.CategoryEdit{
			{Category: "Goals", Content: "", EntryId: &missing},
		},
	})
	assert.Error(t, err)
	assert.Empty(t, store.notes, "failed batch must not leave an audit note")
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProcessNoteRequest struct {
	ContactId uuid.UUID `json:"contact_id" validate:"required"`
	Note      string    `json:"note" validate:"required"`
}

type SynthesisItem struct {
	Category   string  `json:"category"`
	Content    string  `json:"content"`
	Confidence float64 `json:"confidence"`
}

type ProcessNoteResponse struct {
	RawNoteId       uuid.UUID       `json:"raw_note_id"`
	ContactId       uuid.UUID       `json:"contact_id"`
	ContactName     string          `json:"contact_name"`
	Synthesis       []SynthesisItem `json:"synthesis"`
	CategoriesCount int             `json:"categories_count"`
	RagContextUsed  bool            `json:"rag_context_used"`
}

type RawNoteItem struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type SynthesizedEntryItem struct {
	Id         uuid.UUID  `json:"id"`
	RawNoteId  *uuid.UUID `json:"raw_note_id"`
	Category   string     `json:"category"`
	Content    string     `json:"content"`
	Confidence float64    `json:"confidence"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ContactNotesResponse struct {
	ContactId          uuid.UUID              `json:"contact_id"`
	ContactName        string                 `json:"contact_name"`
	RawNotes           []RawNoteItem          `json:"raw_notes"`
	SynthesizedEntries []SynthesizedEntryItem `json:"synthesized_entries"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Tier     int    `json:"tier"` // 1, 2 or 3; anything else coerced to 2
}

type CreateContactResponse struct {
	Id       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Tier     int       `json:"tier"`
}

type ContactListItem struct {
	Id        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Tier      int       `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryEntry struct {
	Id         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

type ContactDetailResponse struct {
	Id              uuid.UUID                  `json:"id"`
	FullName        string                     `json:"full_name"`
	Tier            int                        `json:"tier"`
	CreatedAt       time.Time                  `json:"created_at"`
	CategorizedData map[string][]CategoryEntry `json:"categorized_data"`
}

// CategoryEdit is one requested change in a bulk category edit.
// Empty content means delete: the specific entry if EntryId is set,
// otherwise every entry in the category.
type CategoryEdit struct {
	Category string     `json:"category" validate:"required"`
	Content  string     `json:"content"`
	EntryId  *uuid.UUID `json:"entry_id"`
}

type EditCategoriesRequest struct {
	Edits []CategoryEdit `json:"edits" validate:"required,min=1,dive"`
}

type EditCategoriesResponse struct {
	Updated     int       `json:"updated"`
	Deleted     int       `json:"deleted"`
	Created     int       `json:"created"`
	AuditNoteId uuid.UUID `json:"audit_note_id"`
}

type ContactLogEntry struct {
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

type ContactLogNote struct {
	Id                 uuid.UUID              `json:"id"`
	Content            string                 `json:"content"`
	Source             string                 `json:"source"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	SynthesizedEntries []ContactLogEntry      `json:"synthesized_entries"`
}

type ContactLogsResponse struct {
	ContactId   uuid.UUID        `json:"contact_id"`
	ContactName string           `json:"contact_name"`
	RawNotes    []ContactLogNote `json:"raw_notes"`
	TotalNotes  int              `json:"total_notes"`
}

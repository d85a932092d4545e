package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NoteSourceManual     = "manual"
	NoteSourceImport     = "import"
	NoteSourceManualEdit = "manual_edit"
)

type RawNote struct {
	Id        uuid.UUID
	ContactId uuid.UUID
	Content   string
	Source    string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}

type SynthesizedEntry struct {
	Id         uuid.UUID
	ContactId  uuid.UUID
	RawNoteId  *uuid.UUID
	Category   string
	Content    string
	Confidence float64
	CreatedAt  time.Time
}

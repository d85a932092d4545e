// Package vectorstore maintains one logical document collection per contact
// on top of Postgres/pgvector. It is a soft dependency: writes are
// best-effort and reads degrade to a sentinel, so primary persistence never
// depends on its health.
package vectorstore

import (
	"context"

	"github.com/google/uuid"
)

// NoHistory is returned by RelevantHistory when the collection is empty or
// the lookup fails. Callers compare against it to decide whether retrieved
// context exists.
const NoHistory = "No relevant history found."

// DocumentSeparator joins retrieved documents in RelevantHistory output.
const DocumentSeparator = "\n---\n"

type Store interface {
	// StoreNote appends a document to the contact's collection. Best-effort:
	// implementations log and swallow failures, returning an error only for
	// observability at call sites that care.
	StoreNote(ctx context.Context, collectionID string, contactID, noteID uuid.UUID, content string) error

	// RelevantHistory returns up to n stored documents most similar to query,
	// joined with DocumentSeparator, or NoHistory when the collection is
	// empty or the call fails.
	RelevantHistory(ctx context.Context, collectionID string, query string, n int) string

	// DeleteCollection removes the contact's collection. Idempotent: deleting
	// an absent collection is success.
	DeleteCollection(ctx context.Context, collectionID string) error
}

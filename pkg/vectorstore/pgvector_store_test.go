package vectorstore

import (
	"context"
	"testing"

	"personal-crm-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=dryrun dbname=dryrun"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

// Similarity search must emit an ORDER BY on cosine distance. A regression
// here is silent: without the ordering the query still succeeds and returns
// arbitrary documents.
func TestNearestQueryOrdersByCosineDistance(t *testing.T) {
	store := NewPgVectorStore(dryRunDB(t), nil, zap.NewNop())
	vec := pgvector.NewVector([]float32{0.1, 0.2, 0.3})

	var docs []model.ContactDocument
	tx := store.nearestQuery(context.Background(), "contact_abcd1234", vec, 3).Find(&docs)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "ORDER BY embedding <=>")
	assert.Contains(t, sql, "collection_id")
	assert.Contains(t, sql, "LIMIT")
	require.Len(t, tx.Statement.Vars, 3)
	assert.Equal(t, vec, tx.Statement.Vars[1])
}

func TestNearestQueryLimit(t *testing.T) {
	store := NewPgVectorStore(dryRunDB(t), nil, zap.NewNop())
	vec := pgvector.NewVector([]float32{1})

	var docs []model.ContactDocument
	tx := store.nearestQuery(context.Background(), "contact_x", vec, 5).Find(&docs)

	assert.Contains(t, tx.Statement.Vars, 5)
}

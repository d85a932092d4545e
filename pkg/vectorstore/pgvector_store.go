package vectorstore

import (
	"context"
	"strings"

	"personal-crm-be/internal/model"
	"personal-crm-be/pkg/embedding"
	"personal-crm-be/pkg/utils"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PgVectorStore struct {
	db       *gorm.DB
	embedder embedding.EmbeddingProvider
	logger   *zap.Logger
}

var _ Store = &PgVectorStore{}

// Notes longer than chunkSize are split so each embedding stays within the
// model's effective context. Overlap preserves continuity at boundaries.
const (
	chunkSize    = 2000
	chunkOverlap = 200
)

func NewPgVectorStore(db *gorm.DB, embedder embedding.EmbeddingProvider, logger *zap.Logger) *PgVectorStore {
	return &PgVectorStore{
		db:       db,
		embedder: embedder,
		logger:   logger.Named("vectorstore"),
	}
}

func (s *PgVectorStore) StoreNote(ctx context.Context, collectionID string, contactID, noteID uuid.UUID, content string) error {
	for _, chunk := range utils.SplitText(content, chunkSize, chunkOverlap) {
		res, err := s.embedder.Generate(ctx, chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			s.logger.Warn("embedding generation failed, note not stored in vector store",
				zap.String("collection_id", collectionID),
				zap.String("note_id", noteID.String()),
				zap.Error(err))
			return err
		}

		doc := model.ContactDocument{
			CollectionId: collectionID,
			ContactId:    contactID,
			NoteId:       noteID,
			Document:     chunk,
			Embedding:    pgvector.NewVector(res.Embedding.Values),
		}
		if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
			s.logger.Warn("vector store write failed",
				zap.String("collection_id", collectionID),
				zap.String("note_id", noteID.String()),
				zap.Error(err))
			return err
		}
	}

	s.logger.Debug("stored note in vector store",
		zap.String("collection_id", collectionID),
		zap.String("note_id", noteID.String()))
	return nil
}

func (s *PgVectorStore) RelevantHistory(ctx context.Context, collectionID string, query string, n int) string {
	if n <= 0 {
		n = 3
	}

	res, err := s.embedder.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		s.logger.Warn("query embedding failed",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		return NoHistory
	}

	var docs []model.ContactDocument
	err = s.nearestQuery(ctx, collectionID, pgvector.NewVector(res.Embedding.Values), n).
		Find(&docs).Error
	if err != nil {
		s.logger.Warn("vector store query failed",
			zap.String("collection_id", collectionID),
			zap.Error(err))
		return NoHistory
	}

	if len(docs) == 0 {
		return NoHistory
	}

	contents := make([]string, len(docs))
	for i, d := range docs {
		contents[i] = d.Document
	}

	s.logger.Debug("retrieved relevant history",
		zap.String("collection_id", collectionID),
		zap.Int("documents", len(docs)))
	return strings.Join(contents, DocumentSeparator)
}

// nearestQuery ranks a collection's documents by cosine distance to vec.
// The ordering goes through clause.OrderBy because gorm's Order() only
// accepts strings and clause.OrderBy values; anything else is dropped
// without error, producing an unordered scan.
func (s *PgVectorStore) nearestQuery(ctx context.Context, collectionID string, vec pgvector.Vector, n int) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.ContactDocument{}).
		Where("collection_id = ?", collectionID).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "embedding <=> ?",
			Vars:               []interface{}{vec},
			WithoutParentheses: true,
		}}).
		Limit(n)
}

func (s *PgVectorStore) DeleteCollection(ctx context.Context, collectionID string) error {
	result := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Delete(&model.ContactDocument{})
	if result.Error != nil {
		s.logger.Error("vector collection delete failed",
			zap.String("collection_id", collectionID),
			zap.Error(result.Error))
		return result.Error
	}

	// Zero rows deleted means the collection never existed; still success.
	s.logger.Info("deleted vector collection",
		zap.String("collection_id", collectionID),
		zap.Int64("documents", result.RowsAffected))
	return nil
}

package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/model"
	"personal-crm-be/internal/repository/specification"
	"personal-crm-be/internal/repository/unitofwork"
	"personal-crm-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ContactRepository())
	assert.NotNil(t, uow.RawNoteRepository())
	assert.NotNil(t, uow.SynthesizedEntryRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Transactional Note Synthesis Write", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:       uuid.New(),
			Email:    "test-integration-" + uuid.New().String() + "@example.com",
			FullName: "Integration Test User",
			Role:     "user",
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		contact := &entity.Contact{
			Id:                 uuid.New(),
			UserId:             user.Id,
			FullName:           "Integration Contact",
			Tier:               2,
			VectorCollectionId: "contact_" + uuid.NewString()[:8],
		}
		err = uow.ContactRepository().Create(ctx, contact)
		assert.NoError(t, err)

		// Transaction: raw note + synthesized entry commit together
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		note := &entity.RawNote{
			Id:        uuid.New(),
			ContactId: contact.Id,
			Content:   "Training for a marathon next spring.",
			Source:    entity.NoteSourceManual,
		}
		err = uow.RawNoteRepository().Create(ctx, note)
		assert.NoError(t, err)

		entry := &entity.SynthesizedEntry{
			Id:         uuid.New(),
			ContactId:  contact.Id,
			RawNoteId:  &note.Id,
			Category:   "Avocation",
			Content:    "Training for a marathon next spring.",
			Confidence: 0.9,
		}
		err = uow.SynthesizedEntryRepository().Create(ctx, entry)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.SynthesizedEntryRepository().FindOne(ctx,
			specification.ByContactID{ContactID: contact.Id},
			specification.ByCategory{Category: "Avocation"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		// Deleting the source note detaches its entries rather than
		// deleting them
		err = gormDB.WithContext(ctx).Delete(&model.RawNote{}, "id = ?", note.Id).Error
		assert.NoError(t, err)

		var detached model.SynthesizedEntry
		err = gormDB.WithContext(ctx).First(&detached, "id = ?", entry.Id).Error
		assert.NoError(t, err)
		assert.Nil(t, detached.RawNoteId)

		// Cascade cleanup
		err = uow.ContactRepository().Delete(ctx, contact.Id)
		assert.NoError(t, err)

		count, err := uow.RawNoteRepository().Count(ctx, specification.ByContactID{ContactID: contact.Id})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)

		t.Log("Successfully wrote note and entry in transaction with cascade delete")
	})
}

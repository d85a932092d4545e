package implementation

import (
	"context"
	"errors"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/mapper"
	"personal-crm-be/internal/model"
	"personal-crm-be/internal/repository/contract"
	"personal-crm-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SynthesizedEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SynthesizedEntryMapper
}

func NewSynthesizedEntryRepository(db *gorm.DB) contract.SynthesizedEntryRepository {
	return &SynthesizedEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSynthesizedEntryMapper(),
	}
}

func (r *SynthesizedEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SynthesizedEntryRepositoryImpl) Create(ctx context.Context, entry *entity.SynthesizedEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *SynthesizedEntryRepositoryImpl) Update(ctx context.Context, entry *entity.SynthesizedEntry) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *SynthesizedEntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SynthesizedEntry{}, id).Error
}

func (r *SynthesizedEntryRepositoryImpl) DeleteByContactAndCategory(ctx context.Context, contactId uuid.UUID, category string, spare *uuid.UUID) (int64, error) {
	query := r.db.WithContext(ctx).
		Where("contact_id = ?", contactId).
		Where("category = ?", category)
	if spare != nil {
		query = query.Where("id <> ?", *spare)
	}
	result := query.Delete(&model.SynthesizedEntry{})
	return result.RowsAffected, result.Error
}

func (r *SynthesizedEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SynthesizedEntry, error) {
	var m model.SynthesizedEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SynthesizedEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SynthesizedEntry, error) {
	var models []*model.SynthesizedEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SynthesizedEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SynthesizedEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

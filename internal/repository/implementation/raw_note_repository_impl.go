package implementation

import (
	"context"
	"errors"

	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/mapper"
	"personal-crm-be/internal/model"
	"personal-crm-be/internal/repository/contract"
	"personal-crm-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RawNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RawNoteMapper
}

func NewRawNoteRepository(db *gorm.DB) contract.RawNoteRepository {
	return &RawNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewRawNoteMapper(),
	}
}

func (r *RawNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RawNoteRepositoryImpl) Create(ctx context.Context, note *entity.RawNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *RawNoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RawNote, error) {
	var m model.RawNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RawNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RawNote, error) {
	var models []*model.RawNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RawNoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RawNote{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package mapper

import (
	"personal-crm-be/internal/entity"
	"personal-crm-be/internal/model"

	"gorm.io/datatypes"
)

type RawNoteMapper struct{}

func NewRawNoteMapper() *RawNoteMapper {
	return &RawNoteMapper{}
}

func (m *RawNoteMapper) ToEntity(n *model.RawNote) *entity.RawNote {
	if n == nil {
		return nil
	}

	var metadata map[string]interface{}
	if n.Metadata != nil {
		metadata = map[string]interface{}(n.Metadata)
	}

	return &entity.RawNote{
		Id:        n.Id,
		ContactId: n.ContactId,
		Content:   n.Content,
		Source:    n.Source,
		Metadata:  metadata,
		CreatedAt: n.CreatedAt,
	}
}

func (m *RawNoteMapper) ToModel(n *entity.RawNote) *model.RawNote {
	if n == nil {
		return nil
	}

	var metadata datatypes.JSONMap
	if n.Metadata != nil {
		metadata = datatypes.JSONMap(n.Metadata)
	}

	return &model.RawNote{
		Id:        n.Id,
		ContactId: n.ContactId,
		Content:   n.Content,
		Source:    n.Source,
		Metadata:  metadata,
		CreatedAt: n.CreatedAt,
	}
}

func (m *RawNoteMapper) ToEntities(notes []*model.RawNote) []*entity.RawNote {
	entities := make([]*entity.RawNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

type SynthesizedEntryMapper struct{}

func NewSynthesizedEntryMapper() *SynthesizedEntryMapper {
	return &SynthesizedEntryMapper{}
}

func (m *SynthesizedEntryMapper) ToEntity(e *model.SynthesizedEntry) *entity.SynthesizedEntry {
	if e == nil {
		return nil
	}

	return &entity.SynthesizedEntry{
		Id:         e.Id,
		ContactId:  e.ContactId,
		RawNoteId:  e.RawNoteId,
		Category:   e.Category,
		Content:    e.Content,
		Confidence: e.Confidence,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *SynthesizedEntryMapper) ToModel(e *entity.SynthesizedEntry) *model.SynthesizedEntry {
	if e == nil {
		return nil
	}

	return &model.SynthesizedEntry{
		Id:         e.Id,
		ContactId:  e.ContactId,
		RawNoteId:  e.RawNoteId,
		Category:   e.Category,
		Content:    e.Content,
		Confidence: e.Confidence,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *SynthesizedEntryMapper) ToEntities(entries []*model.SynthesizedEntry) []*entity.SynthesizedEntry {
	entities := make([]*entity.SynthesizedEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

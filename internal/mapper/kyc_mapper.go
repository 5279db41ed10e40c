package mapper

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"
)

type KYCMapper struct{}

func NewKYCMapper() *KYCMapper {
	return &KYCMapper{}
}

func (m *KYCMapper) ToEntity(d *model.KYCDocument) *entity.KYCDocument {
	if d == nil {
		return nil
	}
	return &entity.KYCDocument{
		Id:              d.Id,
		UserId:          d.UserId,
		DocumentType:    d.DocumentType,
		DocumentNumber:  d.DocumentNumber,
		FrontImageUrl:   d.FrontImageUrl,
		BackImageUrl:    d.BackImageUrl,
		SelfieImageUrl:  d.SelfieImageUrl,
		Status:          entity.KYCStatus(d.Status),
		SubmittedAt:     d.SubmittedAt,
		ReviewedAt:      d.ReviewedAt,
		ReviewedBy:      d.ReviewedBy,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (m *KYCMapper) ToModel(d *entity.KYCDocument) *model.KYCDocument {
	if d == nil {
		return nil
	}
	return &model.KYCDocument{
		Id:              d.Id,
		UserId:          d.UserId,
		DocumentType:    d.DocumentType,
		DocumentNumber:  d.DocumentNumber,
		FrontImageUrl:   d.FrontImageUrl,
		BackImageUrl:    d.BackImageUrl,
		SelfieImageUrl:  d.SelfieImageUrl,
		Status:          string(d.Status),
		SubmittedAt:     d.SubmittedAt,
		ReviewedAt:      d.ReviewedAt,
		ReviewedBy:      d.ReviewedBy,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (m *KYCMapper) ToEntities(docs []*model.KYCDocument) []*entity.KYCDocument {
	entities := make([]*entity.KYCDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

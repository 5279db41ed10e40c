package mapper

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"
)

type BannerMapper struct{}

func NewBannerMapper() *BannerMapper {
	return &BannerMapper{}
}

func (m *BannerMapper) ToEntity(b *model.Banner) *entity.Banner {
	if b == nil {
		return nil
	}
	return &entity.Banner{
		Id:          b.Id,
		Title:       b.Title,
		Subtitle:    b.Subtitle,
		Description: b.Description,
		ImageUrl:    b.ImageUrl,
		CtaText:     b.CtaText,
		CtaLink:     b.CtaLink,
		Order:       b.Order,
		IsActive:    b.IsActive,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (m *BannerMapper) ToModel(b *entity.Banner) *model.Banner {
	if b == nil {
		return nil
	}
	return &model.Banner{
		Id:          b.Id,
		Title:       b.Title,
		Subtitle:    b.Subtitle,
		Description: b.Description,
		ImageUrl:    b.ImageUrl,
		CtaText:     b.CtaText,
		CtaLink:     b.CtaLink,
		Order:       b.Order,
		IsActive:    b.IsActive,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (m *BannerMapper) ToEntities(banners []*model.Banner) []*entity.Banner {
	entities := make([]*entity.Banner, len(banners))
	for i, b := range banners {
		entities[i] = m.ToEntity(b)
	}
	return entities
}

package service

import (
	"context"
	"time"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IBannerService interface {
	ListActive(ctx context.Context) ([]*dto.BannerResponse, error)
	ListAll(ctx context.Context) ([]*dto.BannerResponse, error)
	Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateBannerRequest) (*dto.BannerResponse, error)
	Update(ctx context.Context, req *dto.UpdateBannerRequest) (*dto.BannerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBannerService(uowFactory unitofwork.RepositoryFactory) IBannerService {
	return &bannerService{uowFactory: uowFactory}
}

func toBannerResponse(banner *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		Id:          banner.Id,
		Title:       banner.Title,
		Subtitle:    banner.Subtitle,
		Description: banner.Description,
		ImageUrl:    banner.ImageUrl,
		CtaText:     banner.CtaText,
		CtaLink:     banner.CtaLink,
		Order:       banner.Order,
		IsActive:    banner.IsActive,
		CreatedAt:   banner.CreatedAt,
	}
}

// ListActive is the public carousel feed, ordered by display order then
// recency.
func (s *bannerService) ListActive(ctx context.Context) ([]*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banners, err := uow.BannerRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "display_order", Desc: false},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return mapBanners(banners), nil
}

func (s *bannerService) ListAll(ctx context.Context) ([]*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banners, err := uow.BannerRepository().FindAll(ctx,
		specification.OrderBy{Field: "display_order", Desc: false},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return mapBanners(banners), nil
}

func mapBanners(banners []*entity.Banner) []*dto.BannerResponse {
	out := make([]*dto.BannerResponse, 0, len(banners))
	for _, banner := range banners {
		out = append(out, toBannerResponse(banner))
	}
	return out
}

func (s *bannerService) Create(ctx context.Context, actorId uuid.UUID, req *dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := &entity.Banner{
		Id:          uuid.New(),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		CtaText:     req.CtaText,
		CtaLink:     req.CtaLink,
		Order:       req.Order,
		IsActive:    isActive,
		CreatedBy:   actorId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.BannerRepository().Create(ctx, banner); err != nil {
		return nil, apperr.Internal(err)
	}
	return toBannerResponse(banner), nil
}

func (s *bannerService) Update(ctx context.Context, req *dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banner, err := uow.BannerRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if banner == nil {
		return nil, apperr.NotFound("Banner not found")
	}

	if req.Title != "" {
		banner.Title = req.Title
	}
	if req.Subtitle != "" {
		banner.Subtitle = req.Subtitle
	}
	if req.Description != "" {
		banner.Description = req.Description
	}
	if req.ImageUrl != "" {
		banner.ImageUrl = req.ImageUrl
	}
	if req.CtaText != "" {
		banner.CtaText = req.CtaText
	}
	if req.CtaLink != "" {
		banner.CtaLink = req.CtaLink
	}
	if req.Order != nil {
		banner.Order = *req.Order
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	banner.UpdatedAt = time.Now()

	if err := uow.BannerRepository().Update(ctx, banner); err != nil {
		return nil, apperr.Internal(err)
	}
	return toBannerResponse(banner), nil
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	banner, err := uow.BannerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperr.Internal(err)
	}
	if banner == nil {
		return apperr.NotFound("Banner not found")
	}
	return uow.BannerRepository().Delete(ctx, id)
}

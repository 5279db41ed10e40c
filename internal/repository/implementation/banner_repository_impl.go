package implementation

import (
	"context"
	"errors"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/mapper"
	"fx-backoffice-be/internal/model"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BannerMapper
}

func NewBannerRepository(db *gorm.DB) contract.BannerRepository {
	return &BannerRepositoryImpl{
		db:     db,
		mapper: mapper.NewBannerMapper(),
	}
}

func (r *BannerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BannerRepositoryImpl) Create(ctx context.Context, banner *entity.Banner) error {
	m := r.mapper.ToModel(banner)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*banner = *r.mapper.ToEntity(m)
	return nil
}

func (r *BannerRepositoryImpl) Update(ctx context.Context, banner *entity.Banner) error {
	m := r.mapper.ToModel(banner)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*banner = *r.mapper.ToEntity(m)
	return nil
}

func (r *BannerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Banner{}).Error
}

func (r *BannerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Banner, error) {
	var m model.Banner
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BannerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Banner, error) {
	var models []*model.Banner
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

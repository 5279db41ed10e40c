package implementation

import (
	"context"
	"errors"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/mapper"
	"fx-backoffice-be/internal/model"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"

	"gorm.io/gorm"
)

type KYCRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KYCMapper
}

func NewKYCRepository(db *gorm.DB) contract.KYCRepository {
	return &KYCRepositoryImpl{
		db:     db,
		mapper: mapper.NewKYCMapper(),
	}
}

func (r *KYCRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KYCRepositoryImpl) Create(ctx context.Context, doc *entity.KYCDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *KYCRepositoryImpl) Update(ctx context.Context, doc *entity.KYCDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *KYCRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KYCDocument, error) {
	var m model.KYCDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KYCRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KYCDocument, error) {
	var models []*model.KYCDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KYCRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KYCDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

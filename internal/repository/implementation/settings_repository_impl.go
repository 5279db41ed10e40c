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

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SettingsRepositoryImpl) Create(ctx context.Context, settings *entity.AdminSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, settings *entity.AdminSettings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *SettingsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminSettings, error) {
	var m model.AdminSettings
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SettingsRepositoryImpl) DeleteByAdmin(ctx context.Context, adminId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("admin_id = ?", adminId).Delete(&model.AdminSettings{}).Error
}

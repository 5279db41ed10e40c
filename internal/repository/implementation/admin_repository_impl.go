package implementation

import (
	"context"
	"errors"
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/mapper"
	"fx-backoffice-be/internal/model"
	"fx-backoffice-be/internal/repository/contract"
	"fx-backoffice-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminMapper
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminMapper(),
	}
}

func (r *AdminRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *entity.Admin) error {
	m := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*admin = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminRepositoryImpl) Update(ctx context.Context, admin *entity.Admin) error {
	m := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*admin = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdminRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Admin{}).Error
}

func (r *AdminRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	var m model.Admin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AdminRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error) {
	var models []*model.Admin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AdminRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Admin{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdminRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).Update("status", status).Error
}

func (r *AdminRepositoryImpl) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *AdminRepositoryImpl) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).Where("id = ?", id).Update("last_login_at", at).Error
}

func (r *AdminRepositoryImpl) CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error {
	m := r.mapper.ActionLogToModel(log)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *AdminRepositoryImpl) FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error) {
	var models []*model.AdminActionLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ActionLogsToEntities(models), nil
}

package mapper

import (
	"encoding/json"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"

	"gorm.io/datatypes"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	permissions := map[string]bool{}
	if len(a.Permissions) > 0 {
		_ = json.Unmarshal(a.Permissions, &permissions)
	}
	var sidebar []string
	if len(a.SidebarPermissions) > 0 {
		_ = json.Unmarshal(a.SidebarPermissions, &sidebar)
	}
	return &entity.Admin{
		Id:                 a.Id,
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Phone:              a.Phone,
		Role:               entity.AdminRole(a.Role),
		Status:             entity.AdminStatus(a.Status),
		UrlSlug:            a.UrlSlug,
		BrandName:          a.BrandName,
		Logo:               a.Logo,
		Permissions:        permissions,
		SidebarPermissions: sidebar,
		LastLoginAt:        a.LastLoginAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	permissions, _ := json.Marshal(a.Permissions)
	sidebar, _ := json.Marshal(a.SidebarPermissions)
	return &model.Admin{
		Id:                 a.Id,
		Email:              a.Email,
		PasswordHash:       a.PasswordHash,
		FirstName:          a.FirstName,
		LastName:           a.LastName,
		Phone:              a.Phone,
		Role:               string(a.Role),
		Status:             string(a.Status),
		UrlSlug:            a.UrlSlug,
		BrandName:          a.BrandName,
		Logo:               a.Logo,
		Permissions:        datatypes.JSON(permissions),
		SidebarPermissions: datatypes.JSON(sidebar),
		LastLoginAt:        a.LastLoginAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (m *AdminMapper) ToEntities(admins []*model.Admin) []*entity.Admin {
	entities := make([]*entity.Admin, len(admins))
	for i, a := range admins {
		entities[i] = m.ToEntity(a)
	}
	return entities
}

func (m *AdminMapper) ActionLogToEntity(l *model.AdminActionLog) *entity.AdminActionLog {
	if l == nil {
		return nil
	}
	previous := map[string]interface{}{}
	next := map[string]interface{}{}
	if len(l.PreviousValue) > 0 {
		_ = json.Unmarshal(l.PreviousValue, &previous)
	}
	if len(l.NewValue) > 0 {
		_ = json.Unmarshal(l.NewValue, &next)
	}
	return &entity.AdminActionLog{
		Id:            l.Id,
		AdminId:       l.AdminId,
		Action:        l.Action,
		TargetType:    l.TargetType,
		TargetId:      l.TargetId,
		PreviousValue: previous,
		NewValue:      next,
		Reason:        l.Reason,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *AdminMapper) ActionLogToModel(l *entity.AdminActionLog) *model.AdminActionLog {
	if l == nil {
		return nil
	}
	previous, _ := json.Marshal(l.PreviousValue)
	next, _ := json.Marshal(l.NewValue)
	return &model.AdminActionLog{
		Id:            l.Id,
		AdminId:       l.AdminId,
		Action:        l.Action,
		TargetType:    l.TargetType,
		TargetId:      l.TargetId,
		PreviousValue: datatypes.JSON(previous),
		NewValue:      datatypes.JSON(next),
		Reason:        l.Reason,
		CreatedAt:     l.CreatedAt,
	}
}

func (m *AdminMapper) ActionLogsToEntities(logs []*model.AdminActionLog) []*entity.AdminActionLog {
	entities := make([]*entity.AdminActionLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ActionLogToEntity(l)
	}
	return entities
}

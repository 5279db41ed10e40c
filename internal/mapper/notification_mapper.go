package mapper

import (
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	return &entity.Notification{
		Id:          n.Id,
		RecipientId: n.RecipientId,
		Audience:    n.Audience,
		Level:       entity.NotificationLevel(n.Level),
		Title:       n.Title,
		Body:        n.Body,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	return &model.Notification{
		Id:          n.Id,
		RecipientId: n.RecipientId,
		Audience:    n.Audience,
		Level:       string(n.Level),
		Title:       n.Title,
		Body:        n.Body,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

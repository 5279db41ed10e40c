package service

import (
	"context"
	"time"

	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	AudienceAdmin = "admin"
	AudienceUser  = "user"
)

// NotificationDelivery pushes real-time updates, implemented by the
// websocket hub. A nil delivery degrades to inbox-only notifications.
type NotificationDelivery interface {
	Send(recipientId uuid.UUID, notification *entity.Notification)
}

type INotificationService interface {
	Notify(ctx context.Context, recipientId uuid.UUID, audience string, level entity.NotificationLevel, title, body string) error
	List(ctx context.Context, recipientId uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientId uuid.UUID) error
	SetDelivery(delivery NotificationDelivery)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	delivery   NotificationDelivery
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory) INotificationService {
	return &notificationService{uowFactory: uowFactory}
}

// SetDelivery wires the websocket hub after construction, the hub itself
// depends on this service for history.
func (s *notificationService) SetDelivery(delivery NotificationDelivery) {
	s.delivery = delivery
}

func (s *notificationService) Notify(ctx context.Context, recipientId uuid.UUID, audience string, level entity.NotificationLevel, title, body string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notification := &entity.Notification{
		Id:          uuid.New(),
		RecipientId: recipientId,
		Audience:    audience,
		Level:       level,
		Title:       title,
		Body:        body,
		CreatedAt:   time.Now(),
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return apperr.Internal(err)
	}

	if s.delivery != nil {
		s.delivery.Send(recipientId, notification)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, recipientId uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.Filter("recipient_id", recipientId),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllRead(ctx, recipientId)
}

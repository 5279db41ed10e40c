package service

import (
	"context"
	"time"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"
	"fx-backoffice-be/internal/repository/specification"
	"fx-backoffice-be/internal/repository/unitofwork"
	"fx-backoffice-be/pkg/events"

	"github.com/google/uuid"
)

type IKYCService interface {
	Submit(ctx context.Context, req *dto.SubmitKYCRequest) (*dto.KYCResponse, error)
	Status(ctx context.Context, userId uuid.UUID) (*dto.KYCResponse, error)
	List(ctx context.Context, actor *entity.Admin, status string, limit, offset int) ([]*dto.KYCResponse, error)
	Stats(ctx context.Context, actor *entity.Admin) (*dto.KYCStatsResponse, error)
	Approve(ctx context.Context, actor *entity.Admin, id uuid.UUID) (*dto.KYCResponse, error)
	Reject(ctx context.Context, actor *entity.Admin, req *dto.RejectKYCRequest) (*dto.KYCResponse, error)
}

type kycService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IEventPublisher
}

func NewKYCService(uowFactory unitofwork.RepositoryFactory, publisher IEventPublisher) IKYCService {
	return &kycService{uowFactory: uowFactory, publisher: publisher}
}

func (s *kycService) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewEvent(eventType, data))
	}
}

func toKYCResponse(doc *entity.KYCDocument) *dto.KYCResponse {
	return &dto.KYCResponse{
		Id:              doc.Id,
		UserId:          doc.UserId,
		DocumentType:    doc.DocumentType,
		DocumentNumber:  doc.DocumentNumber,
		FrontImageUrl:   doc.FrontImageUrl,
		BackImageUrl:    doc.BackImageUrl,
		SelfieImageUrl:  doc.SelfieImageUrl,
		Status:          string(doc.Status),
		SubmittedAt:     doc.SubmittedAt,
		ReviewedAt:      doc.ReviewedAt,
		RejectionReason: doc.RejectionReason,
	}
}

// Submit accepts a new document unless a live submission exists. Only a
// rejected submission can be replaced.
func (s *kycService) Submit(ctx context.Context, req *dto.SubmitKYCRequest) (*dto.KYCResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	latest, err := uow.KYCRepository().FindOne(ctx,
		specification.ByUserID{UserID: req.UserId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if latest != nil {
		switch latest.Status {
		case entity.KYCStatusApproved:
			return nil, apperr.Conflict("Your KYC is already approved")
		case entity.KYCStatusPending:
			return nil, apperr.Conflict("Your KYC is pending review")
		}
	}

	doc := &entity.KYCDocument{
		Id:             uuid.New(),
		UserId:         req.UserId,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		FrontImageUrl:  req.FrontImageUrl,
		BackImageUrl:   req.BackImageUrl,
		SelfieImageUrl: req.SelfieImageUrl,
		Status:         entity.KYCStatusPending,
		SubmittedAt:    time.Now(),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := uow.KYCRepository().Create(ctx, doc); err != nil {
		return nil, apperr.Internal(err)
	}

	s.emit(ctx, events.TypeKycSubmitted, map[string]interface{}{
		"user_id":     req.UserId.String(),
		"document_id": doc.Id.String(),
	})
	return toKYCResponse(doc), nil
}

func (s *kycService) Status(ctx context.Context, userId uuid.UUID) (*dto.KYCResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	latest, err := uow.KYCRepository().FindOne(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if latest == nil {
		return nil, apperr.NotFound("No KYC submission found")
	}
	return toKYCResponse(latest), nil
}

func (s *kycService) scope(ctx context.Context, uow unitofwork.UnitOfWork, actor *entity.Admin) ([]specification.Specification, bool, error) {
	if actor.IsSuperAdmin() {
		return nil, false, nil
	}
	users, err := uow.UserRepository().FindAll(ctx, specification.AssignedToAdmin{AdminID: actor.Id})
	if err != nil {
		return nil, false, apperr.Internal(err)
	}
	if len(users) == 0 {
		return nil, true, nil
	}
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.Id)
	}
	return []specification.Specification{specification.ByUserIDs{IDs: ids}}, false, nil
}

func (s *kycService) List(ctx context.Context, actor *entity.Admin, status string, limit, offset int) ([]*dto.KYCResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scope, empty, err := s.scope(ctx, uow, actor)
	if err != nil {
		return nil, err
	}
	if empty {
		return []*dto.KYCResponse{}, nil
	}

	specs := append(scope,
		specification.OrderBy{Field: "submitted_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	docs, err := uow.KYCRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]*dto.KYCResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toKYCResponse(doc))
	}
	return out, nil
}

func (s *kycService) Stats(ctx context.Context, actor *entity.Admin) (*dto.KYCStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scope, empty, err := s.scope(ctx, uow, actor)
	if err != nil {
		return nil, err
	}
	if empty {
		return &dto.KYCStatsResponse{}, nil
	}

	stats := &dto.KYCStatsResponse{}
	for status, target := range map[entity.KYCStatus]*int64{
		entity.KYCStatusPending:  &stats.Pending,
		entity.KYCStatusApproved: &stats.Approved,
		entity.KYCStatusRejected: &stats.Rejected,
	} {
		count, err := uow.KYCRepository().Count(ctx, append(scope, specification.ByStatus{Status: string(status)})...)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		*target = count
	}
	return stats, nil
}

// Approve settles a pending submission and marks the user verified in the
// same transaction.
func (s *kycService) Approve(ctx context.Context, actor *entity.Admin, id uuid.UUID) (*dto.KYCResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.pendingDoc(ctx, uow, actor, id)
	if err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: doc.UserId})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	now := time.Now()
	doc.Status = entity.KYCStatusApproved
	doc.ReviewedAt = &now
	doc.ReviewedBy = &actor.Id
	doc.UpdatedAt = now

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	defer uow.Rollback()

	if err := uow.KYCRepository().Update(ctx, doc); err != nil {
		return nil, apperr.Internal(err)
	}

	user.KycApproved = true
	user.UpdatedAt = now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Internal(err)
	}

	s.emit(ctx, events.TypeKycApproved, map[string]interface{}{
		"user_id":    user.Id.String(),
		"email":      user.Email,
		"first_name": user.FirstName,
	})
	return toKYCResponse(doc), nil
}

func (s *kycService) Reject(ctx context.Context, actor *entity.Admin, req *dto.RejectKYCRequest) (*dto.KYCResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := s.pendingDoc(ctx, uow, actor, req.Id)
	if err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: doc.UserId})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	doc.Status = entity.KYCStatusRejected
	doc.RejectionReason = req.Reason
	doc.ReviewedAt = &now
	doc.ReviewedBy = &actor.Id
	doc.UpdatedAt = now

	if err := uow.KYCRepository().Update(ctx, doc); err != nil {
		return nil, apperr.Internal(err)
	}

	if user != nil {
		s.emit(ctx, events.TypeKycRejected, map[string]interface{}{
			"user_id":    user.Id.String(),
			"email":      user.Email,
			"first_name": user.FirstName,
			"reason":     req.Reason,
		})
	}
	return toKYCResponse(doc), nil
}

func (s *kycService) pendingDoc(ctx context.Context, uow unitofwork.UnitOfWork, actor *entity.Admin, id uuid.UUID) (*entity.KYCDocument, error) {
	doc, err := uow.KYCRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if doc == nil {
		return nil, apperr.NotFound("KYC document not found")
	}
	if doc.Status != entity.KYCStatusPending {
		return nil, apperr.Conflict("KYC document already reviewed")
	}

	if !actor.IsSuperAdmin() {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: doc.UserId})
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if user == nil || user.AssignedAdmin == nil || *user.AssignedAdmin != actor.Id {
			return nil, apperr.Forbidden("User not assigned to you")
		}
	}
	return doc, nil
}

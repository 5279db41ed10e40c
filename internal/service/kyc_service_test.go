package service

import (
	"context"
	"testing"
	"time"

	"fx-backoffice-be/internal/dto"
	"fx-backoffice-be/internal/entity"
	"fx-backoffice-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest(userId uuid.UUID) *dto.SubmitKYCRequest {
	return &dto.SubmitKYCRequest{
		UserId:         userId,
		DocumentType:   "passport",
		DocumentNumber: "X1234567",
		FrontImageUrl:  "https://cdn.test/front.jpg",
		SelfieImageUrl: "https://cdn.test/selfie.jpg",
	}
}

func TestKYCSubmitLifecycle(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)

	pub := &capturePublisher{}
	svc := NewKYCService(newMemFactory(store), pub)

	res, err := svc.Submit(context.Background(), submitRequest(user.Id))
	require.NoError(t, err)
	assert.Equal(t, string(entity.KYCStatusPending), res.Status)
	assert.Contains(t, pub.types(), "KYC_SUBMITTED")

	// Pending submission blocks a second one.
	_, err = svc.Submit(context.Background(), submitRequest(user.Id))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	reject, err := svc.Reject(context.Background(), admin, &dto.RejectKYCRequest{Id: res.Id, Reason: "blurry photo"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.KYCStatusRejected), reject.Status)
	assert.Equal(t, "blurry photo", reject.RejectionReason)

	// Rejected documents can be replaced.
	resubmit, err := svc.Submit(context.Background(), submitRequest(user.Id))
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), admin, resubmit.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.KYCStatusApproved), approved.Status)
	assert.True(t, store.users[user.Id].KycApproved)

	// Approved KYC blocks further submissions permanently.
	_, err = svc.Submit(context.Background(), submitRequest(user.Id))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestKYCApproveOnlyPending(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)

	doc := &entity.KYCDocument{
		Id:     uuid.New(),
		UserId: user.Id,
		Status: entity.KYCStatusRejected,
	}
	store.kycDocs[doc.Id] = doc

	svc := NewKYCService(newMemFactory(store), nil)
	_, err := svc.Approve(context.Background(), admin, doc.Id)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestKYCReviewScopedToTenant(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	other := seedAdmin(store, entity.AdminRoleAdmin, 0)
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)
	user := seedUser(store, &other.Id, 0)

	doc := &entity.KYCDocument{
		Id:     uuid.New(),
		UserId: user.Id,
		Status: entity.KYCStatusPending,
	}
	store.kycDocs[doc.Id] = doc

	svc := NewKYCService(newMemFactory(store), nil)

	_, err := svc.Approve(context.Background(), admin, doc.Id)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	_, err = svc.Approve(context.Background(), super, doc.Id)
	assert.NoError(t, err)
}

func TestKYCStatusReturnsLatest(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	user := seedUser(store, &admin.Id, 0)

	old := &entity.KYCDocument{
		Id:          uuid.New(),
		UserId:      user.Id,
		Status:      entity.KYCStatusRejected,
		SubmittedAt: time.Now().Add(-48 * time.Hour),
	}
	latest := &entity.KYCDocument{
		Id:          uuid.New(),
		UserId:      user.Id,
		Status:      entity.KYCStatusPending,
		SubmittedAt: time.Now(),
	}
	store.kycDocs[old.Id] = old
	store.kycDocs[latest.Id] = latest

	svc := NewKYCService(newMemFactory(store), nil)
	res, err := svc.Status(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, latest.Id, res.Id)

	_, err = svc.Status(context.Background(), uuid.New())
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestKYCStatsPerTenant(t *testing.T) {
	store := newMemStore()
	admin := seedAdmin(store, entity.AdminRoleAdmin, 0)
	other := seedAdmin(store, entity.AdminRoleAdmin, 0)
	super := seedAdmin(store, entity.AdminRoleSuperAdmin, 0)

	mine := seedUser(store, &admin.Id, 0)
	theirs := seedUser(store, &other.Id, 0)

	for i, status := range []entity.KYCStatus{entity.KYCStatusPending, entity.KYCStatusApproved} {
		doc := &entity.KYCDocument{Id: uuid.New(), UserId: mine.Id, Status: status, SubmittedAt: time.Now().Add(time.Duration(i) * time.Minute)}
		store.kycDocs[doc.Id] = doc
	}
	foreign := &entity.KYCDocument{Id: uuid.New(), UserId: theirs.Id, Status: entity.KYCStatusPending, SubmittedAt: time.Now()}
	store.kycDocs[foreign.Id] = foreign

	svc := NewKYCService(newMemFactory(store), nil)

	stats, err := svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(0), stats.Rejected)

	stats, err = svc.Stats(context.Background(), super)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
}

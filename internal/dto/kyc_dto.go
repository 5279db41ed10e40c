package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitKYCRequest struct {
	UserId         uuid.UUID
	DocumentType   string `json:"documentType" validate:"required"`
	DocumentNumber string `json:"documentNumber" validate:"required"`
	FrontImageUrl  string `json:"frontImageUrl" validate:"required"`
	BackImageUrl   string `json:"backImageUrl"`
	SelfieImageUrl string `json:"selfieImageUrl" validate:"required"`
}

type RejectKYCRequest struct {
	Id     uuid.UUID
	Reason string `json:"reason" validate:"required"`
}

type KYCResponse struct {
	Id              uuid.UUID  `json:"id"`
	UserId          uuid.UUID  `json:"userId"`
	DocumentType    string     `json:"documentType"`
	DocumentNumber  string     `json:"documentNumber"`
	FrontImageUrl   string     `json:"frontImageUrl,omitempty"`
	BackImageUrl    string     `json:"backImageUrl,omitempty"`
	SelfieImageUrl  string     `json:"selfieImageUrl,omitempty"`
	Status          string     `json:"status"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

type KYCStatsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

type KYCDocument struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	DocumentType    string
	DocumentNumber  string
	FrontImageUrl   string
	BackImageUrl    string
	SelfieImageUrl  string
	Status          KYCStatus
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

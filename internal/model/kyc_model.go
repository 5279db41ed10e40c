package model

import (
	"time"

	"github.com/google/uuid"
)

type KYCDocument struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType    string    `gorm:"type:varchar(50);not null"`
	DocumentNumber  string    `gorm:"type:varchar(100);not null"`
	FrontImageUrl   string    `gorm:"type:text"`
	BackImageUrl    string    `gorm:"type:text"`
	SelfieImageUrl  string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	SubmittedAt     time.Time `gorm:"not null"`
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (KYCDocument) TableName() string {
	return "kyc_documents"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Subtitle    string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	ImageUrl    string    `gorm:"type:text"`
	CtaText     string    `gorm:"type:varchar(100)"`
	CtaLink     string    `gorm:"type:text"`
	Order       int       `gorm:"column:display_order;not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Banner) TableName() string {
	return "banners"
}

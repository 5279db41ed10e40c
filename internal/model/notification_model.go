package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientId uuid.UUID `gorm:"type:uuid;not null;index"`
	Audience    string    `gorm:"type:varchar(20);not null"`
	Level       string    `gorm:"type:varchar(20);not null;default:'info'"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Body        string    `gorm:"type:text"`
	Read        bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (Notification) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Admin struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	FirstName          string    `gorm:"type:varchar(100);not null"`
	LastName           string    `gorm:"type:varchar(100)"`
	Phone              string    `gorm:"type:varchar(32)"`
	Role               string    `gorm:"type:varchar(20);not null;default:'ADMIN';index"`
	Status             string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	UrlSlug            string    `gorm:"type:varchar(100);uniqueIndex"`
	BrandName          string    `gorm:"type:varchar(255)"`
	Logo               string    `gorm:"type:text"`
	Permissions        datatypes.JSON
	SidebarPermissions datatypes.JSON
	LastLoginAt        *time.Time
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Admin) TableName() string {
	return "admins"
}

type AdminActionLog struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Action        string    `gorm:"type:varchar(100);not null"`
	TargetType    string    `gorm:"type:varchar(50)"`
	TargetId      string    `gorm:"type:varchar(100)"`
	PreviousValue datatypes.JSON
	NewValue      datatypes.JSON
	Reason        string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
}

func (AdminActionLog) TableName() string {
	return "admin_action_logs"
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// AssignedToAdmin scopes users to one admin tenant.
type AssignedToAdmin struct {
	AdminID uuid.UUID
}

func (s AssignedToAdmin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assigned_admin = ?", s.AdminID)
}

// AssignedToSuperAdmin matches the "super" pseudo tenant: users with no
// assigned admin.
type AssignedToSuperAdmin struct{}

func (s AssignedToSuperAdmin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assigned_admin IS NULL")
}

// ByUserIDs scopes child rows (kyc documents, trading accounts) to a set
// of users, used when aggregating per tenant.
type ByUserIDs struct {
	IDs []uuid.UUID
}

func (s ByUserIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id IN ?", s.IDs)
}

type SearchUsers struct {
	Query string
}

func (s SearchUsers) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
}

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvolvingAdmin matches ledger entries where the admin is on either side.
type InvolvingAdmin struct {
	AdminID uuid.UUID
}

func (s InvolvingAdmin) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("from_admin_id = ? OR to_admin_id = ?", s.AdminID, s.AdminID)
}

type ByTransactionType struct {
	Type string
}

func (s ByTransactionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// ToUsersOnly matches ledger entries whose destination is a user wallet.
type ToUsersOnly struct{}

func (s ToUsersOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("to_user_id IS NOT NULL")
}

type CreatedAfter struct {
	After string
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.After)
}

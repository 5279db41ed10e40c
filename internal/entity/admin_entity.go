package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminRole string
type AdminStatus string

const (
	AdminRoleSuperAdmin AdminRole = "SUPER_ADMIN"
	AdminRoleAdmin      AdminRole = "ADMIN"
	AdminRoleEmployee   AdminRole = "EMPLOYEE"

	AdminStatusActive    AdminStatus = "ACTIVE"
	AdminStatusSuspended AdminStatus = "SUSPENDED"
	AdminStatusPending   AdminStatus = "PENDING"
)

// Permission keys checked by the authorization helper. Anything outside
// this set is rejected at validation time.
const (
	PermManageUsers    = "manageUsers"
	PermManageFunds    = "manageFunds"
	PermManageKYC      = "manageKyc"
	PermManageSettings = "manageSettings"
	PermManageIB       = "manageIb"
	PermViewReports    = "viewReports"
)

type Admin struct {
	Id                 uuid.UUID
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              string
	Role               AdminRole
	Status             AdminStatus
	UrlSlug            string
	BrandName          string
	Logo               string
	Permissions        map[string]bool
	SidebarPermissions []string
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (a *Admin) IsSuperAdmin() bool {
	return a.Role == AdminRoleSuperAdmin
}

func (a *Admin) HasPermission(key string) bool {
	if a.Role == AdminRoleSuperAdmin {
		return true
	}
	return a.Permissions[key]
}

// AdminActionLog records sensitive mutations (credit changes, login-as-user)
// for the super admin audit view. Written best-effort.
type AdminActionLog struct {
	Id            uuid.UUID
	AdminId       uuid.UUID
	Action        string
	TargetType    string
	TargetId      string
	PreviousValue map[string]interface{}
	NewValue      map[string]interface{}
	Reason        string
	CreatedAt     time.Time
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminProfile struct {
	Id                 uuid.UUID       `json:"id"`
	Email              string          `json:"email"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Phone              string          `json:"phone,omitempty"`
	Role               string          `json:"role"`
	Status             string          `json:"status"`
	UrlSlug            string          `json:"urlSlug,omitempty"`
	BrandName          string          `json:"brandName,omitempty"`
	Logo               string          `json:"logo,omitempty"`
	Permissions        map[string]bool `json:"permissions,omitempty"`
	SidebarPermissions []string        `json:"sidebarPermissions,omitempty"`
	LastLoginAt        *time.Time      `json:"lastLoginAt,omitempty"`
	WalletBalance      *float64        `json:"walletBalance,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

type InitSuperAdminRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	BrandName string `json:"brandName"`
	Logo      string `json:"logo"`
}

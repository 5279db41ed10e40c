package dto

import (
	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	FirstName   string          `json:"firstName" validate:"required"`
	LastName    string          `json:"lastName"`
	Phone       string          `json:"phone"`
	UrlSlug     string          `json:"urlSlug" validate:"required,lowercase,alphanum"`
	BrandName   string          `json:"brandName"`
	Logo        string          `json:"logo"`
	Permissions map[string]bool `json:"permissions"`
}

type UpdateAdminRequest struct {
	Id        uuid.UUID
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	BrandName string `json:"brandName"`
	Logo      string `json:"logo"`
	UrlSlug   string `json:"urlSlug"`
}

type UpdatePermissionsRequest struct {
	Id          uuid.UUID
	Permissions map[string]bool `json:"permissions" validate:"required"`
}

type ResetPasswordRequest struct {
	Id       uuid.UUID
	Password string `json:"password" validate:"required,min=8"`
}

type AdminListItem struct {
	Profile       AdminProfile `json:"profile"`
	WalletBalance float64      `json:"walletBalance"`
	WalletStatus  string       `json:"walletStatus"`
	UserCount     int64        `json:"userCount"`
}

type BrandResponse struct {
	AdminId   uuid.UUID `json:"adminId"`
	BrandName string    `json:"brandName"`
	Logo      string    `json:"logo"`
	UrlSlug   string    `json:"urlSlug"`
}

type SlugAvailabilityResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

type CreateEmployeeRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=8"`
	FirstName          string   `json:"firstName" validate:"required"`
	LastName           string   `json:"lastName"`
	Phone              string   `json:"phone"`
	SidebarPermissions []string `json:"sidebarPermissions"`
}

type UpdateEmployeeRequest struct {
	Id                 uuid.UUID
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Phone              string   `json:"phone"`
	SidebarPermissions []string `json:"sidebarPermissions"`
}

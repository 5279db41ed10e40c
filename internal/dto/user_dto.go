package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	FirstName     string     `json:"firstName" validate:"required"`
	LastName      string     `json:"lastName"`
	Phone         string     `json:"phone"`
	AssignedAdmin *uuid.UUID `json:"assignedAdmin"`
}

type UpdateUserRequest struct {
	Id        uuid.UUID
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type TransferUserRequest struct {
	UserId        uuid.UUID
	ToAdminId     *uuid.UUID `json:"toAdminId"`
	TransferFunds bool       `json:"transferFunds"`
}

type SetUserPasswordRequest struct {
	UserId   uuid.UUID
	Password string `json:"password" validate:"required,min=8"`
}

type BlockUserRequest struct {
	UserId uuid.UUID
	Reason string `json:"reason"`
}

type BanUserRequest struct {
	UserId uuid.UUID
	Reason string `json:"reason"`
}

type UserResponse struct {
	Id            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Phone         string     `json:"phone,omitempty"`
	AssignedAdmin *uuid.UUID `json:"assignedAdmin,omitempty"`
	AdminUrlSlug  string     `json:"adminUrlSlug,omitempty"`
	IsBlocked     bool       `json:"isBlocked"`
	BlockReason   string     `json:"blockReason,omitempty"`
	IsBanned      bool       `json:"isBanned"`
	BanReason     string     `json:"banReason,omitempty"`
	KycApproved   bool       `json:"kycApproved"`
	WalletBalance float64    `json:"walletBalance"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ListUsersQuery struct {
	AdminId string `query:"adminId"`
	Search  string `query:"search"`
	Limit   int    `query:"limit"`
	Offset  int    `query:"offset"`
}

type DashboardStatsResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	BlockedUsers     int64   `json:"blockedUsers"`
	PendingKyc       int64   `json:"pendingKyc"`
	TotalDeposits    float64 `json:"totalDeposits"`
	TotalWithdrawals float64 `json:"totalWithdrawals"`
	ActiveAccounts   int64   `json:"activeAccounts"`
	WalletBalance    float64 `json:"walletBalance"`
}

type LoginAsUserResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

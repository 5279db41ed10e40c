package events

import "time"

// Domain event types carried over the in-process bus and mirrored to the
// audit stream.
const (
	TypeFundRequestCreated   = "FUND_REQUEST_CREATED"
	TypeFundRequestApproved  = "FUND_REQUEST_APPROVED"
	TypeFundRequestRejected  = "FUND_REQUEST_REJECTED"
	TypeWalletFunded         = "WALLET_FUNDED"
	TypeWalletDeducted       = "WALLET_DEDUCTED"
	TypeUserFundsAdded       = "USER_FUNDS_ADDED"
	TypeUserFundsDeducted    = "USER_FUNDS_DEDUCTED"
	TypeKycSubmitted         = "KYC_SUBMITTED"
	TypeKycApproved          = "KYC_APPROVED"
	TypeKycRejected          = "KYC_REJECTED"
	TypeUserBanned           = "USER_BANNED"
	TypeUserUnbanned         = "USER_UNBANNED"
	TypeUserCreated          = "USER_CREATED"
	TypeAdminLoginAsUser     = "ADMIN_LOGIN_AS_USER"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "WALLET_FUNDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

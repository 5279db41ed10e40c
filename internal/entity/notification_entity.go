package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
)

// Notification is pushed over the websocket hub and kept for the bell icon
// history. RecipientId is an admin id or a user id depending on audience.
type Notification struct {
	Id          uuid.UUID
	RecipientId uuid.UUID
	Audience    string
	Level       NotificationLevel
	Title       string
	Body        string
	Read        bool
	CreatedAt   time.Time
}

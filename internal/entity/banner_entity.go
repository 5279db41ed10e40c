package entity

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	Id          uuid.UUID
	Title       string
	Subtitle    string
	Description string
	ImageUrl    string
	CtaText     string
	CtaLink     string
	Order       int
	IsActive    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBannerRequest struct {
	Title       string `json:"title" validate:"required"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	CtaText     string `json:"ctaText"`
	CtaLink     string `json:"ctaLink"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateBannerRequest struct {
	Id          uuid.UUID
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	CtaText     string `json:"ctaText"`
	CtaLink     string `json:"ctaLink"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

type BannerResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageUrl    string    `json:"imageUrl,omitempty"`
	CtaText     string    `json:"ctaText,omitempty"`
	CtaLink     string    `json:"ctaLink,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

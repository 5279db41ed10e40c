package dto

type BatchPriceRequest struct {
	Symbols []string `json:"symbols" validate:"required,min=1,dive,required"`
}

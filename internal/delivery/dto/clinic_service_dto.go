package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateClinicServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description" validate:"omitempty"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=1"`
}

type UpdateClinicServiceRequest struct {
	Name            string           `json:"name" validate:"omitempty,min=2,max=255"`
	Description     string           `json:"description" validate:"omitempty"`
	Price           *decimal.Decimal `json:"price" validate:"omitempty"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,min=1"`
	IsActive        *bool            `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ClinicServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ClinicServiceListResponse struct {
	Services []ClinicServiceResponse `json:"services"`
	Total    int                     `json:"total"`
}

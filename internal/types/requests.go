package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateCampaignRequest is the campaign creation wizard's final submit payload.
type CreateCampaignRequest struct {
	BrandID        string   `json:"brand_id" validate:"required,uuid4"`
	Name           string   `json:"name" validate:"required,min=1,max=120"`
	ImageURL       string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Locale         string   `json:"locale,omitempty"`
	Commission     float64  `json:"commission" validate:"gte=0,lte=100"`
	Categories     []string `json:"categories" validate:"required,min=1,dive,min=1"`
	Socials        []string `json:"socials" validate:"omitempty,dive,min=1"`
	IsRegulated    bool     `json:"is_regulated"`
	RequiresVehicle bool    `json:"requires_vehicle"`
	ContentType    []string `json:"content_type" validate:"omitempty,dive,min=1"`
	TotalBudget    float64  `json:"total_budget" validate:"gte=0"`
}

// PostMessageRequest appends one message to a conversation log.
type PostMessageRequest struct {
	SenderID string `json:"sender_id" validate:"required,uuid4"`
	Body     string `json:"body" validate:"required,min=1,max=4000"`
}

// Validate validates the CreateCampaignRequest using the validator.
func (r *CreateCampaignRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PostMessageRequest using the validator.
func (r *PostMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

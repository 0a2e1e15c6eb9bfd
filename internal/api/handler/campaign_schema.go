package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createCampaignRequest struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1,dive,required"`
	Price      float64  `json:"price"      validate:"required,gt=0"`
}

type campaignResponse struct {
	ID         string    `json:"id"`
	ProductIDs []string  `json:"product_ids"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

type createCampaignResponse struct {
	Message  string           `json:"message"`
	Campaign campaignResponse `json:"campaign"`
}

// missingProductsResponse enumerates the product ids that failed validation.
type missingProductsResponse struct {
	Error      string   `json:"error"`
	MissingIDs []string `json:"missing_ids"`
}

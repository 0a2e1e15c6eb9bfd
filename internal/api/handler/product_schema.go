package handler

import "time"

type createProductRequest struct {
	ID          string  `json:"id"          validate:"required"`
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type updateProductRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at,omitempty"`
}

type productMessageResponse struct {
	Message string          `json:"message"`
	Product productResponse `json:"product"`
}

type messageResponse struct {
	Message string `json:"message"`
}

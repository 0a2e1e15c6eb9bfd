package handler

import "github.com/airbean/order-system/internal/core/domain"

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt.UTC(),
		ModifiedAt:  p.ModifiedAt.UTC(),
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

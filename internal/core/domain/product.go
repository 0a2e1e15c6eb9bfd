package domain

import "time"

// Product is a single catalog (menu) item. The ID is caller-assigned and
// unique within the catalog.
type Product struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	ModifiedAt  time.Time `json:"modified_at,omitempty" bson:"modified_at,omitempty"`
}

package domain

import "time"

// Campaign binds a promotional price to a set of existing products.
//
// Product references are checked once at creation time and not re-validated
// afterwards: deleting a referenced product later leaves the campaign with a
// dangling id. Deletions are recorded in the catalog audit trail so stale
// references can be found offline.
type Campaign struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ProductIDs []string  `json:"product_ids" bson:"product_ids"`
	Price      float64   `json:"price" bson:"price"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// ValidationResult is the outcome of checking a proposed campaign's product
// references. Invalid references are data, not an error: infrastructure
// failures surface as ErrValidationUnavailable instead.
type ValidationResult struct {
	Valid      bool
	MissingIDs []string
}

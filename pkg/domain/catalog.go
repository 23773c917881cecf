package domain

import "github.com/shopspring/decimal"

// CatalogItem is a single orderable product. Items are defined at process
// start and never mutated.
type CatalogItem struct {
	ID    string          `json:"id" yaml:"id"`
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

package model

import "time"

// MovementType classifies an inventory update.
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// IsValid reports whether m is a known movement type.
func (m MovementType) IsValid() bool {
	return m == MovementIn || m == MovementOut || m == MovementAdjustment
}

// Product is a stock item (sheet, coil, pipe, ...).
type Product struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	SKU          string     `json:"sku,omitempty"`
	Category     string     `json:"category"`
	Commodity    string     `json:"commodity,omitempty"`
	Grade        string     `json:"grade,omitempty"`
	Finish       string     `json:"finish,omitempty"`
	Size         string     `json:"size,omitempty"`
	Thickness    string     `json:"thickness,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	CostPrice    float64    `json:"cost_price"`
	SellingPrice float64    `json:"selling_price"`
	ReorderLevel float64    `json:"reorder_level"`
	CurrentStock float64    `json:"current_stock"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// NeedsReorder reports whether stock has fallen to the reorder level.
func (p *Product) NeedsReorder() bool {
	return p.ReorderLevel > 0 && p.CurrentStock <= p.ReorderLevel
}

// ProductPage is one page of products from a list or search call.
type ProductPage struct {
	Products []Product `json:"products"`
	PageInfo PageInfo  `json:"page_info"`
}

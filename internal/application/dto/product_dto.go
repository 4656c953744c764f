package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los tags JSON son camelCase: es el contrato que consume el dashboard
// (costPrice, soldQuantity, createdAt...), no el snake_case habitual.

// CreateProductRequest entrada para crear un producto.
// Quantity por defecto 1 y SoldQuantity por defecto 0 si no se envían.
// CostPrice es puntero para distinguir ausente de cero explícito: name y
// costPrice son obligatorios.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	CostPrice    *decimal.Decimal `json:"costPrice" validate:"required"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Quantity     *int             `json:"quantity"`
	SoldQuantity *int             `json:"soldQuantity"`
}

// UpdateProductRequest entrada para actualizar un producto (campos nil = sin cambio).
// El estado no se acepta del cliente: se deriva siempre de las cantidades.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"` // cero explícito limpia el precio (vuelve a null)
	Quantity     *int             `json:"quantity"`
	SoldQuantity *int             `json:"soldQuantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	CostPrice    decimal.Decimal  `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	Quantity     int              `json:"quantity"`
	SoldQuantity int              `json:"soldQuantity"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ProductListResponse lista de productos, más reciente primero.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

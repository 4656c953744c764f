package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario con su costo, precio de venta
// opcional y cantidades totales/vendidas.
//
// SellingPrice es nil hasta que se registra la primera venta; un producto con
// unidades vendidas pero sin precio se tolera como dato incompleto (aporta
// cero a ingresos y margen, pero sus unidades sí cuentan).
type Product struct {
	ID           string
	Name         string
	CostPrice    decimal.Decimal  // costo unitario
	SellingPrice *decimal.Decimal // precio de venta unitario (nil = sin venta registrada)
	Quantity     int              // unidades totales ingresadas (≥1)
	SoldQuantity int              // unidades vendidas, en [0, Quantity]
	Status       string           // derivado: available | partially_sold | sold
	CreatedAt    time.Time        // inmutable desde la creación
}

// SellingPriceOrZero devuelve el precio de venta, o cero si no está registrado.
func (p *Product) SellingPriceOrZero() decimal.Decimal {
	if p.SellingPrice == nil {
		return decimal.Zero
	}
	return *p.SellingPrice
}

// Package product contiene servicios de dominio puros sobre Product:
// resolución del estado de ciclo de vida y normalización de registros
// de la generación anterior del esquema.
package product

import "github.com/jhoicas/ventas-tracker/internal/domain/entity"

// Estados de ciclo de vida de un producto. Las transiciones avanzan solo
// por incrementos de SoldQuantity: available → partially_sold → sold.
const (
	StatusAvailable     = "available"
	StatusPartiallySold = "partially_sold"
	StatusSold          = "sold"
)

// ResolveStatus deriva el estado canónico desde cantidad y unidades vendidas.
// Entradas fuera de rango se acotan en lugar de fallar: vendido negativo
// cuenta como 0 y vendido > cantidad se trata como cantidad.
func ResolveStatus(quantity, soldQuantity int) string {
	if soldQuantity <= 0 {
		return StatusAvailable
	}
	if quantity > 0 && soldQuantity < quantity {
		return StatusPartiallySold
	}
	return StatusSold
}

// Normalize lleva un producto de cualquier generación del esquema a la forma
// actual y acota los valores fuera de invariante.
//
// Generación anterior: una unidad implícita y solo estados available|sold,
// sin Quantity. Se detecta por Quantity <= 0 y se traduce a
// quantity=1, soldQuantity = (status=="sold" ? 1 : 0).
//
// Devuelve una copia; nunca muta el registro de entrada.
func Normalize(p entity.Product) entity.Product {
	if p.Quantity <= 0 {
		p.Quantity = 1
		if p.Status == StatusSold {
			p.SoldQuantity = 1
		} else {
			p.SoldQuantity = 0
		}
	}
	if p.SoldQuantity < 0 {
		p.SoldQuantity = 0
	}
	if p.SoldQuantity > p.Quantity {
		p.SoldQuantity = p.Quantity
	}
	p.Status = ResolveStatus(p.Quantity, p.SoldQuantity)
	return p
}

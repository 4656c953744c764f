// Package stats contiene el motor de agregación financiera del dashboard:
// totales de costo/ingreso/margen, conteos de unidades y la serie diaria
// para los gráficos.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	"github.com/jhoicas/ventas-tracker/internal/domain/entity"
	domainproduct "github.com/jhoicas/ventas-tracker/internal/domain/product"
)

const dailyDateLayout = "2006-01-02"

// Aggregate calcula los totales y la serie diaria sobre un snapshot de
// productos. Función pura: no muta la entrada, no hace I/O y es segura de
// invocar concurrentemente.
//
// Reglas de cómputo:
//   - totalCost suma costPrice × quantity de todos los registros (capital
//     comprometido, vendido o no).
//   - totalRevenue suma sellingPrice × soldQuantity solo donde hay unidades
//     vendidas Y precio registrado.
//   - totalProfit = totalRevenue − Σ costPrice × soldQuantity sobre registros
//     con ventas (descuenta solo el costo de lo vendido, no todo el stock).
//   - Un registro con ventas pero sin precio aporta cero a ingresos y margen;
//     sus unidades sí cuentan en soldCount y en el bucket diario.
//
// Los registros se normalizan antes de computar (esquema legado y valores
// fuera de invariante), así que una lista inconsistente degrada con valores
// acotados en lugar de fallar.
func Aggregate(products []*entity.Product) *dto.StatsDTO {
	result := &dto.StatsDTO{
		TotalCost:    decimal.Zero,
		TotalRevenue: decimal.Zero,
		TotalProfit:  decimal.Zero,
		DailyStats:   []dto.DailyStatDTO{},
	}

	soldCost := decimal.Zero // Σ costPrice × soldQuantity de registros con ventas
	buckets := make(map[string]*dto.DailyStatDTO)

	for _, raw := range products {
		if raw == nil {
			continue
		}
		p := domainproduct.Normalize(*raw)

		qty := decimal.NewFromInt(int64(p.Quantity))
		soldQty := decimal.NewFromInt(int64(p.SoldQuantity))

		result.TotalCost = result.TotalCost.Add(p.CostPrice.Mul(qty))
		result.SoldCount += p.SoldQuantity
		result.AvailableCount += p.Quantity - p.SoldQuantity
		result.TotalCount += p.Quantity

		if p.SoldQuantity == 0 {
			continue
		}

		// Solo registros con unidades vendidas aportan a ingresos, margen
		// y buckets diarios. El precio faltante se trata como cero.
		revenue := p.SellingPriceOrZero().Mul(soldQty)
		cost := p.CostPrice.Mul(soldQty)

		result.TotalRevenue = result.TotalRevenue.Add(revenue)
		soldCost = soldCost.Add(cost)

		date := p.CreatedAt.UTC().Format(dailyDateLayout)
		bucket, ok := buckets[date]
		if !ok {
			bucket = &dto.DailyStatDTO{
				Date:    date,
				Revenue: decimal.Zero,
				Profit:  decimal.Zero,
				Cost:    decimal.Zero,
			}
			buckets[date] = bucket
		}
		bucket.Revenue = bucket.Revenue.Add(revenue)
		bucket.Profit = bucket.Profit.Add(revenue.Sub(cost))
		bucket.Cost = bucket.Cost.Add(cost)
		bucket.Count += p.SoldQuantity
	}

	result.TotalProfit = result.TotalRevenue.Sub(soldCost)

	// Serie ordenada ascendente; la comparación lexicográfica de YYYY-MM-DD
	// coincide con el orden cronológico.
	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		result.DailyStats = append(result.DailyStats, *buckets[date])
	}

	return result
}

// MarginPercentage devuelve el margen como porcentaje del ingreso
// (profit / revenue × 100), con 0 cuando no hay ingresos.
func MarginPercentage(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100))
}

package dto

import "github.com/shopspring/decimal"

// DailyStatDTO acumulado financiero de un día calendario.
type DailyStatDTO struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Cost    decimal.Decimal `json:"cost"` // costo de las unidades vendidas ese día
	Count   int             `json:"count"` // unidades vendidas ese día
}

// StatsDTO respuesta de GET /api/stats: totales más la serie diaria para gráficos.
//
// TotalCost es el costo de TODO el stock ingresado (capital comprometido);
// TotalProfit en cambio descuenta solo el costo de las unidades vendidas
// (margen realizado). La asimetría es deliberada.
type StatsDTO struct {
	TotalCost    decimal.Decimal `json:"totalCost"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`

	SoldCount      int `json:"soldCount"`      // Σ soldQuantity
	AvailableCount int `json:"availableCount"` // Σ (quantity - soldQuantity)
	TotalCount     int `json:"totalCount"`     // Σ quantity

	DailyStats []DailyStatDTO `json:"dailyStats"` // orden ascendente por fecha
}

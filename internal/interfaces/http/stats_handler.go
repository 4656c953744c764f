package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	appstats "github.com/jhoicas/ventas-tracker/internal/application/stats"
)

// StatsHandler maneja los endpoints del dashboard de estadísticas.
type StatsHandler struct {
	stats  *appstats.UseCase
	report *appstats.ReportUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(stats *appstats.UseCase, report *appstats.ReportUseCase) *StatsHandler {
	return &StatsHandler{stats: stats, report: report}
}

// GetStats godoc
// @Summary      Totales financieros y serie diaria para los gráficos
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.StatsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetReport godoc
// @Summary      Reporte PDF del resumen de ventas
// @Tags         stats
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stats/report [get]
func (h *StatsHandler) GetReport(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("resumen-ventas-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

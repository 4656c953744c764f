package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	"github.com/jhoicas/ventas-tracker/internal/domain/repository"
)

// ReportPDFGenerator puerto de salida para la representación PDF del resumen.
type ReportPDFGenerator interface {
	GenerateStatsPDF(ctx context.Context, stats *dto.StatsDTO, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del dashboard (totales + serie diaria).
type ReportUseCase struct {
	repo repository.ProductRepository
	pdf  ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ProductRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// Generate agrega el snapshot actual y lo entrega al generador PDF.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("reporte: listar productos: %w", err)
	}
	pdfBytes, err := uc.pdf.GenerateStatsPDF(ctx, Aggregate(products), time.Now())
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdfBytes, nil
}

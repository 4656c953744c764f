package stats

import (
	"fmt"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	"github.com/jhoicas/ventas-tracker/internal/domain/repository"
)

// UseCase expone la agregación sobre el snapshot completo del repositorio.
//
// El repositorio entrega el snapshot; el cómputo es enteramente en memoria
// (Aggregate). No hay estado entre llamadas.
type UseCase struct {
	repo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo}
}

// GetStats lista los productos y ejecuta el motor de agregación.
func (uc *UseCase) GetStats() (*dto.StatsDTO, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("stats: listar productos: %w", err)
	}
	return Aggregate(products), nil
}

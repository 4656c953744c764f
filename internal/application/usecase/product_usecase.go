package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	"github.com/jhoicas/ventas-tracker/internal/domain"
	"github.com/jhoicas/ventas-tracker/internal/domain/entity"
	domainproduct "github.com/jhoicas/ventas-tracker/internal/domain/product"
	"github.com/jhoicas/ventas-tracker/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El estado nunca se acepta
// del cliente: se deriva de quantity/soldQuantity en cada escritura y se
// recalcula en cada lectura, de modo que columna y cantidades no puedan
// contradecirse.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Name y CostPrice son obligatorios; Quantity por
// defecto 1, SoldQuantity por defecto 0.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CostPrice == nil {
		return nil, domain.ErrInvalidInput
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	soldQuantity := 0
	if in.SoldQuantity != nil {
		soldQuantity = *in.SoldQuantity
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CostPrice:    *in.CostPrice,
		SellingPrice: normalizePrice(in.SellingPrice),
		Quantity:     quantity,
		SoldQuantity: soldQuantity,
		CreatedAt:    time.Now(),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.Status = domainproduct.ResolveStatus(product.Quantity, product.SoldQuantity)

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Campos nil no cambian; un
// sellingPrice explícito de cero limpia el precio (vuelve a null, siguiendo
// el contrato del formulario del dashboard).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = normalizePrice(in.SellingPrice)
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.SoldQuantity != nil {
		product.SoldQuantity = *in.SoldQuantity
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.Status = domainproduct.ResolveStatus(product.Quantity, product.SoldQuantity)

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos, más reciente primero.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// validateProduct aplica los invariantes del almacén:
// quantity ≥ 1, 0 ≤ soldQuantity ≤ quantity, precios no negativos.
func validateProduct(p *entity.Product) error {
	if p.Name == "" {
		return domain.ErrInvalidInput
	}
	if p.CostPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if p.SellingPrice != nil && p.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if p.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	if p.SoldQuantity < 0 || p.SoldQuantity > p.Quantity {
		return domain.ErrInvalidInput
	}
	return nil
}

// normalizePrice convierte un precio ausente o cero en nil (sin precio de venta).
func normalizePrice(price *decimal.Decimal) *decimal.Decimal {
	if price == nil || price.IsZero() {
		return nil
	}
	p := *price
	return &p
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	// Normalize cubre registros del esquema anterior y deriva el estado en la
	// lectura, aunque la columna persistida diga otra cosa.
	n := domainproduct.Normalize(*p)
	return &dto.ProductResponse{
		ID:           n.ID,
		Name:         n.Name,
		CostPrice:    n.CostPrice,
		SellingPrice: n.SellingPrice,
		Quantity:     n.Quantity,
		SoldQuantity: n.SoldQuantity,
		Status:       n.Status,
		CreatedAt:    n.CreatedAt,
	}
}

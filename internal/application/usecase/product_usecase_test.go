package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	"github.com/jhoicas/ventas-tracker/internal/application/usecase"
	"github.com/jhoicas/ventas-tracker/internal/domain"
	"github.com/jhoicas/ventas-tracker/internal/domain/entity"
	domainproduct "github.com/jhoicas/ventas-tracker/internal/domain/product"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria para los tests (sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]entity.Product
	order []string // IDs en orden de inserción, los más nuevos al final
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	// Más reciente primero, como el adaptador de PostgreSQL
	list := make([]*entity.Product, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.items[r.order[i]]
		list = append(list, &p)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Sin quantity/soldQuantity en el request se aplican los defaults (1 y 0)
// y el estado se deriva como available.
func TestProductCreate_Defaults(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:      "bolso",
		CostPrice: decPtr(100),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 1, out.Quantity)
	assert.Equal(t, 0, out.SoldQuantity)
	assert.Nil(t, out.SellingPrice)
	assert.Equal(t, domainproduct.StatusAvailable, out.Status)
	assert.False(t, out.CreatedAt.IsZero())
}

// El estado nunca viene del cliente: se deriva de las cantidades enviadas.
func TestProductCreate_EstadoDerivado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:         "reloj",
		CostPrice:    decPtr(100),
		SellingPrice: decPtr(150),
		Quantity:     intPtr(4),
		SoldQuantity: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, domainproduct.StatusPartiallySold, out.Status)
}

// Invariantes del almacén: cantidades y precios fuera de rango se rechazan.
func TestProductCreate_Validacion(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	cases := []dto.CreateProductRequest{
		{Name: "", CostPrice: decPtr(10)},
		{Name: "x"},
		{Name: "x", CostPrice: decPtr(-1)},
		{Name: "x", CostPrice: decPtr(10), Quantity: intPtr(0)},
		{Name: "x", CostPrice: decPtr(10), Quantity: intPtr(2), SoldQuantity: intPtr(3)},
		{Name: "x", CostPrice: decPtr(10), SoldQuantity: intPtr(-1)},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Actualización parcial: los campos nil quedan intactos y el estado se
// recalcula con las cantidades nuevas.
func TestProductUpdate_Parcial(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:      "monitor",
		CostPrice: decPtr(200),
		Quantity:  intPtr(3),
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		SellingPrice: decPtr(350),
		SoldQuantity: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "monitor", out.Name, "el nombre no debe cambiar")
	require.NotNil(t, out.SellingPrice)
	assert.True(t, decimal.NewFromInt(350).Equal(*out.SellingPrice))
	assert.Equal(t, domainproduct.StatusSold, out.Status)
}

// Un sellingPrice explícito de cero limpia el precio registrado.
func TestProductUpdate_PrecioCeroLimpia(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{
		Name:         "parlante",
		CostPrice:    decPtr(50),
		SellingPrice: decPtr(90),
	})
	require.NoError(t, err)
	require.NotNil(t, created.SellingPrice)

	zero := decimal.Zero
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{SellingPrice: &zero})
	require.NoError(t, err)
	assert.Nil(t, out.SellingPrice)
}

// Producto inexistente: nil, nil (el handler lo traduce a 404).
func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// La lectura deriva el estado aunque la columna persistida diga otra cosa.
func TestProductList_EstadoRecalculadoEnLectura(t *testing.T) {
	repo := newFakeProductRepo()
	require.NoError(t, repo.Create(&entity.Product{
		ID:           "p1",
		Name:         "dato inconsistente",
		CostPrice:    decimal.NewFromInt(10),
		Quantity:     4,
		SoldQuantity: 2,
		Status:       domainproduct.StatusAvailable, // contradice las cantidades
	}))

	uc := usecase.NewProductUseCase(repo)
	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, domainproduct.StatusPartiallySold, out.Items[0].Status)
}

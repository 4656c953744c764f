package repository

import "github.com/jhoicas/ventas-tracker/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por created_at descendente.
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}

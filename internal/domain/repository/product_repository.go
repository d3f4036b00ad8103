package repository

import "github.com/tu-usuario/tienda-admin-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetByName devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por nombre sin distinguir mayúsculas/minúsculas.
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve la página solicitada (offset/limit sobre el orden de inserción)
	// junto con el total de productos.
	List(limit, offset int) ([]*entity.Product, int, error)
	// SearchByName devuelve todos los productos cuyo nombre contiene el término
	// (sin distinguir mayúsculas). Cero coincidencias es un resultado válido.
	SearchByName(term string) ([]*entity.Product, error)
	Delete(id string) error
}

// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas con RWMutex. El estado vive lo que vive el proceso: no
// hay durabilidad, por diseño de la aplicación.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// folder normaliza mayúsculas/minúsculas (case folding Unicode) para
// comparar y buscar nombres de producto.
var folder = cases.Fold()

// ProductRepository guarda productos en un map indexado por ID (lookup O(1))
// más un slice con el orden de inserción, que es el orden del listado.
type ProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Product
	order []string
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[string]*entity.Product)}
}

// Create guarda una copia del producto. El ID debe ser único.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(product)
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByID(id)
}

// GetByName busca por nombre sin distinguir mayúsculas. (nil, nil) si no hay coincidencia.
func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getByName(name)
}

// Update reemplaza el producto almacenado. ErrNotFound si el ID no existe.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(product)
}

// List devuelve la página (limit/offset sobre el orden de inserción) y el total.
// Un offset fuera de rango devuelve página vacía, no error.
func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(limit, offset)
}

// SearchByName devuelve los productos cuyo nombre contiene el término (case folding).
func (r *ProductRepository) SearchByName(term string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.searchByName(term)
}

// Delete elimina el producto. ErrNotFound si el ID no existe.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.delete(id)
}

// ── Implementación sin lock (compartida con la vista transaccional) ──────────

func (r *ProductRepository) create(product *entity.Product) error {
	if _, exists := r.byID[product.ID]; exists {
		return fmt.Errorf("producto con id %q ya existe", product.ID)
	}
	cp := *product
	r.byID[product.ID] = &cp
	r.order = append(r.order, product.ID)
	return nil
}

func (r *ProductRepository) getByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) getByName(name string) (*entity.Product, error) {
	want := folder.String(strings.TrimSpace(name))
	for _, id := range r.order {
		p := r.byID[id]
		if folder.String(p.Name) == want {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) update(product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

func (r *ProductRepository) list(limit, offset int) ([]*entity.Product, int, error) {
	total := len(r.order)
	if offset >= total {
		return []*entity.Product{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]*entity.Product, 0, end-offset)
	for _, id := range r.order[offset:end] {
		cp := *r.byID[id]
		page = append(page, &cp)
	}
	return page, total, nil
}

func (r *ProductRepository) searchByName(term string) ([]*entity.Product, error) {
	want := folder.String(strings.TrimSpace(term))
	results := []*entity.Product{}
	for _, id := range r.order {
		p := r.byID[id]
		if strings.Contains(folder.String(p.Name), want) {
			cp := *p
			results = append(results, &cp)
		}
	}
	return results, nil
}

func (r *ProductRepository) delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

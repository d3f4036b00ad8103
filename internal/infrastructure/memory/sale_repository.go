package memory

import (
	"sync"

	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// SaleRepository guarda el historial de ventas en memoria.
// Es append-only: no expone borrado ni modificación.
type SaleRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.SaleRecord
	sales []*entity.SaleRecord // orden de registro
}

var _ repository.SaleRepository = (*SaleRepository)(nil)

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{byID: make(map[string]*entity.SaleRecord)}
}

// Append registra una venta. Guarda una copia para preservar la inmutabilidad del historial.
func (r *SaleRepository) Append(sale *entity.SaleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneSale(sale)
	r.byID[sale.ID] = cp
	r.sales = append(r.sales, cp)
	return nil
}

// GetByID devuelve una copia de la venta, o (nil, nil) si no existe.
func (r *SaleRepository) GetByID(id string) (*entity.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneSale(s), nil
}

// ListAll devuelve el historial completo en orden de registro.
func (r *SaleRepository) ListAll() ([]*entity.SaleRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.SaleRecord, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, cloneSale(s))
	}
	return out, nil
}

// cloneSale copia la venta incluyendo el slice de líneas, para que ningún
// caller pueda mutar el registro almacenado.
func cloneSale(s *entity.SaleRecord) *entity.SaleRecord {
	cp := *s
	cp.Products = make([]entity.SoldLineItem, len(s.Products))
	copy(cp.Products, s.Products)
	return &cp
}

package repository

import "github.com/tu-usuario/tienda-admin-api/internal/domain/entity"

// SaleRepository define el puerto del historial de ventas (append-only).
// No existe operación de borrado ni de anulación de ventas.
type SaleRepository interface {
	Append(sale *entity.SaleRecord) error
	// GetByID devuelve (nil, nil) cuando la venta no existe.
	GetByID(id string) (*entity.SaleRecord, error)
	// ListAll devuelve el historial completo en orden de registro.
	ListAll() ([]*entity.SaleRecord, error)
}

package sales

import (
	"context"

	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// TxRunner ejecuta el callback como sección crítica única sobre el inventario
// y el historial de ventas. La implementación en memoria toma el write lock
// del repositorio de productos durante todo el callback.
type TxRunner interface {
	Run(fn func(products repository.ProductRepository, salesRepo repository.SaleRepository) error) error
}

// InvoicePDFGenerator transforma una venta en los bytes de una factura
// imprimible. Es una función pura sobre el SaleRecord: no lee ni muta ningún
// otro estado, y sus fallos se propagan siempre al caller.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.SaleRecord) ([]byte, error)
}

package sales

import (
	"context"
	"fmt"

	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// PDFUseCase genera la factura PDF de una venta registrada.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, generator: generator}
}

// GenerateInvoice busca la venta y devuelve los bytes del PDF.
// ErrNotFound si la venta no existe; los fallos del generador se propagan
// envueltos, nunca se silencian.
func (uc *PDFUseCase) GenerateInvoice(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("venta con id %q: %w", saleID, domain.ErrNotFound)
	}
	pdf, err := uc.generator.GenerateInvoicePDF(ctx, sale)
	if err != nil {
		return nil, fmt.Errorf("generar factura de la venta %s: %w", saleID, err)
	}
	return pdf, nil
}

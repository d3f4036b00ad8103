package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/inventory"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// RecordSaleUseCase registra ventas y consulta el historial.
//
// La rutina de venta es atómica frente al caller: se valida la totalidad de
// las líneas contra el stock actual antes de aplicar ningún descuento, todo
// dentro de la misma sección crítica. Una venta rechazada no deja ninguna
// mutación parcial en el inventario.
type RecordSaleUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{tx: tx, saleRepo: saleRepo}
}

// RecordSale valida disponibilidad, descuenta stock y crea un SaleRecord inmutable.
//
// Orden de validación por línea, en el orden de la petición:
//  1. cantidad solicitada > 0
//  2. el producto existe (si no: not-found nombrando el id)
//  3. stock suficiente (si no: InsufficientStockError con nombre, disponible y solicitado)
//
// El precio unitario se toma siempre del estado actual del producto; el caller
// no puede sobreescribirlo. El total se acumula en el orden de entrada.
func (uc *RecordSaleUseCase) RecordSale(in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.NewValidationError("no se proporcionaron productos para la venta")
	}

	var record *entity.SaleRecord
	err := uc.tx.Run(func(products repository.ProductRepository, salesRepo repository.SaleRepository) error {
		// Primer paso: validar todas las líneas contra el stock actual y
		// construir las líneas provisionales. Los descuentos se calculan
		// sobre copias locales; el repositorio no se toca todavía.
		// working agrupa las copias por id: una línea repetida para el mismo
		// producto valida contra el stock que ya descontaron las anteriores.
		lines := make([]entity.SoldLineItem, 0, len(in.Products))
		working := make(map[string]*entity.Product, len(in.Products))
		order := make([]string, 0, len(in.Products))
		total := decimal.Zero
		for _, item := range in.Products {
			if item.Quantity <= 0 {
				return domain.NewValidationError(
					fmt.Sprintf("la cantidad para el producto %q debe ser un entero positivo", item.ProductID))
			}
			product, ok := working[item.ProductID]
			if !ok {
				var err error
				product, err = products.GetByID(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return fmt.Errorf("producto con id %q: %w", item.ProductID, domain.ErrNotFound)
				}
				working[item.ProductID] = product
				order = append(order, item.ProductID)
			}
			if product.Quantity < item.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Quantity,
					Requested:   item.Quantity,
				}
			}
			lineTotal := product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			lines = append(lines, entity.SoldLineItem{
				ProductID:  product.ID,
				Name:       product.Name,
				Quantity:   item.Quantity,
				UnitPrice:  product.UnitPrice,
				TotalPrice: lineTotal,
			})
			total = total.Add(lineTotal)

			product.Quantity -= item.Quantity
			product.StockStatus = inventory.ClassifyStock(product.Quantity)
			product.UpdatedAt = time.Now()
		}

		// Segundo paso: todas las líneas validaron; aplicar los descuentos
		// acumulados (una sola escritura por producto) y registrar la venta.
		for _, id := range order {
			if err := products.Update(working[id]); err != nil {
				return err
			}
		}
		record = &entity.SaleRecord{
			ID:              uuid.New().String(),
			Date:            time.Now(),
			Products:        lines,
			TotalSaleAmount: total,
		}
		return salesRepo.Append(record)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(record), nil
}

// History devuelve el historial completo de ventas en orden de registro.
func (uc *RecordSaleUseCase) History() ([]dto.SaleResponse, error) {
	records, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toSaleResponse(r))
	}
	return out, nil
}

func toSaleResponse(s *entity.SaleRecord) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	lines := make([]dto.SoldLineItemResponse, 0, len(s.Products))
	for _, l := range s.Products {
		lines = append(lines, dto.SoldLineItemResponse{
			ProductID:  l.ProductID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return &dto.SaleResponse{
		ID:              s.ID,
		Date:            s.Date,
		Products:        lines,
		TotalSaleAmount: s.TotalSaleAmount,
	}
}

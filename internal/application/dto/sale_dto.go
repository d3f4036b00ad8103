package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest una línea de la venta solicitada.
type SaleLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	Products []SaleLineRequest `json:"products"`
}

// SoldLineItemResponse línea vendida (foto al momento de la venta).
type SoldLineItemResponse struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID              string                 `json:"id"`
	Date            time.Time              `json:"date"`
	Products        []SoldLineItemResponse `json:"products"`
	TotalSaleAmount decimal.Decimal        `json:"totalSaleAmount"`
}

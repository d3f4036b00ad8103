package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SoldLineItem es la foto de un producto al momento de la venta.
// Copia nombre y precio para que mutaciones posteriores del Product no alteren el historial.
type SoldLineItem struct {
	ProductID  string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal // UnitPrice * Quantity
}

// SaleRecord es una entrada inmutable del historial de ventas (append-only).
// Se crea una sola vez, nunca se modifica ni se elimina.
type SaleRecord struct {
	ID              string
	Date            time.Time
	Products        []SoldLineItem // en el orden de la petición
	TotalSaleAmount decimal.Decimal
}

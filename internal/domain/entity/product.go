package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ubicaciones de almacenamiento válidas para Product.
const (
	LocationInStock     = "in stock"
	LocationInWarehouse = "in warehouse"
)

// ValidLocation indica si la ubicación pertenece al catálogo cerrado.
func ValidLocation(loc string) bool {
	return loc == LocationInStock || loc == LocationInWarehouse
}

// Product representa un producto del inventario.
// StockStatus es derivado: se recalcula con el clasificador en cada cambio de Quantity,
// nunca se asigna de forma independiente.
type Product struct {
	ID              string
	Name            string          // único por nombre (sin distinguir mayúsculas)
	UnitPrice       decimal.Decimal // precio de venta, > 0
	Quantity        int             // entero >= 0, nunca negativo
	StorageLocation string          // "in stock" | "in warehouse"
	StockStatus     string          // "good" | "medium" | "low", derivado
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

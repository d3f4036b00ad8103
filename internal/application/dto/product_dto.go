package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Las claves JSON conservan el contrato camelCase que consume el panel de administración.

// AddProductRequest entrada para añadir o reabastecer un producto.
// Si ya existe un producto con el mismo nombre (sin distinguir mayúsculas)
// se incrementa su cantidad en lugar de crear un duplicado.
type AddProductRequest struct {
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	StorageLocation string          `json:"storageLocation"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	Quantity        *int             `json:"quantity"`
	StorageLocation *string          `json:"storageLocation"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int             `json:"quantity"`
	StorageLocation string          `json:"storageLocation"`
	StockStatus     string          `json:"stockStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// InventoryListResponse página de inventario con contadores.
type InventoryListResponse struct {
	TotalItems  int               `json:"totalItems"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Products    []ProductResponse `json:"products"`
}

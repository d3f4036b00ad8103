package usecase_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/inventory"
	"github.com/tu-usuario/tienda-admin-api/internal/infrastructure/memory"
)

func newInventoryUC() *usecase.InventoryUseCase {
	return usecase.NewInventoryUseCase(memory.NewProductRepository())
}

func addRequest(name string, price string, quantity int) dto.AddProductRequest {
	return dto.AddProductRequest{
		Name:            name,
		UnitPrice:       decimal.RequireFromString(price),
		Quantity:        quantity,
		StorageLocation: entity.LocationInStock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddOrRestock
// ──────────────────────────────────────────────────────────────────────────────

// El estado de stock tras crear siempre coincide con el clasificador.
func TestAddOrRestock_EstadoDerivadoDelClasificador(t *testing.T) {
	for _, qty := range []int{1, 3, 4, 10, 11} {
		uc := newInventoryUC()
		out, created, err := uc.AddOrRestock(addRequest("Producto", "1.00", qty))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, inventory.ClassifyStock(qty), out.StockStatus,
			"cantidad %d: estado %s", qty, out.StockStatus)
	}
}

// Re-añadir por el mismo nombre (sin distinguir mayúsculas) incrementa la
// cantidad en lugar de crear un duplicado; el tamaño del inventario no cambia.
func TestAddOrRestock_MismoNombreReabastece(t *testing.T) {
	uc := newInventoryUC()

	first, created, err := uc.AddOrRestock(addRequest("Potato Chips", "4.50", 6))
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := uc.AddOrRestock(addRequest("POTATO CHIPS", "4.50", 7))
	require.NoError(t, err)
	assert.False(t, created, "debe reabastecer, no crear")
	assert.Equal(t, first.ID, second.ID, "mismo producto")
	assert.Equal(t, 13, second.Quantity)
	assert.Equal(t, inventory.StatusGood, second.StockStatus)

	page, err := uc.List(1, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems, "el inventario no debe crecer")
}

// Validaciones de entrada: todas las fallas se reportan juntas y nada se crea.
func TestAddOrRestock_Validaciones(t *testing.T) {
	uc := newInventoryUC()
	_, _, err := uc.AddOrRestock(dto.AddProductRequest{
		Name:            "  ",
		UnitPrice:       decimal.Zero,
		Quantity:        0,
		StorageLocation: "en el techo",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 4, "nombre, precio, cantidad y ubicación inválidos")

	page, lerr := uc.List(1, 10)
	require.NoError(t, lerr)
	assert.Equal(t, 0, page.TotalItems)
}

// ──────────────────────────────────────────────────────────────────────────────
// List (paginación 1-based)
// ──────────────────────────────────────────────────────────────────────────────

func TestList_Paginacion(t *testing.T) {
	uc := newInventoryUC()
	for i := 1; i <= 12; i++ {
		_, _, err := uc.AddOrRestock(addRequest(fmt.Sprintf("Producto %02d", i), "1.00", 5))
		require.NoError(t, err)
	}

	page, err := uc.List(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Products, 5)
	assert.Equal(t, "Producto 06", page.Products[0].Name, "la página 2 empieza en el ítem 6")
	assert.Equal(t, "Producto 10", page.Products[4].Name, "y termina en el ítem 10")
}

// Página fuera de rango: lista vacía con contadores correctos, no error.
func TestList_PaginaFueraDeRango(t *testing.T) {
	uc := newInventoryUC()
	for i := 1; i <= 3; i++ {
		_, _, err := uc.AddOrRestock(addRequest(fmt.Sprintf("Producto %d", i), "1.00", 5))
		require.NoError(t, err)
	}

	page, err := uc.List(5, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
}

// Parámetros no positivos: error de validación.
func TestList_ParametrosInvalidos(t *testing.T) {
	uc := newInventoryUC()
	_, err := uc.List(0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.List(1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// SearchByName
// ──────────────────────────────────────────────────────────────────────────────

func TestSearchByName_SubcadenaSinMayusculas(t *testing.T) {
	uc := newInventoryUC()
	_, _, err := uc.AddOrRestock(addRequest("Potato Chips", "4.50", 6))
	require.NoError(t, err)
	_, _, err = uc.AddOrRestock(addRequest("Soda", "2.50", 5))
	require.NoError(t, err)

	results, err := uc.SearchByName("pot")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Potato Chips", results[0].Name)
}

// Cero coincidencias es un éxito con lista vacía, nunca un not-found.
func TestSearchByName_SinCoincidencias(t *testing.T) {
	uc := newInventoryUC()
	_, _, err := uc.AddOrRestock(addRequest("Soda", "2.50", 5))
	require.NoError(t, err)

	results, err := uc.SearchByName("inexistente")
	require.NoError(t, err)
	assert.Empty(t, results)
}

// Término vacío: error de validación.
func TestSearchByName_TerminoVacio(t *testing.T) {
	uc := newInventoryUC()
	_, err := uc.SearchByName("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoEncontrado(t *testing.T) {
	uc := newInventoryUC()
	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_RecalculaEstadoYValidaTodoAntesDeAplicar(t *testing.T) {
	uc := newInventoryUC()
	out, _, err := uc.AddOrRestock(addRequest("Soda", "2.50", 15))
	require.NoError(t, err)
	require.Equal(t, inventory.StatusGood, out.StockStatus)

	newQty := 2
	updated, err := uc.Update(out.ID, dto.UpdateProductRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, inventory.StatusLow, updated.StockStatus)

	// Un campo inválido rechaza la petición completa sin aplicar el resto.
	badPrice := decimal.Zero
	okQty := 30
	_, err = uc.Update(out.ID, dto.UpdateProductRequest{UnitPrice: &badPrice, Quantity: &okQty})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	current, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.Quantity, "la cantidad válida no debe haberse aplicado")
}

func TestUpdate_NoEncontrado(t *testing.T) {
	uc := newInventoryUC()
	qty := 1
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EliminaYNoEncontrado(t *testing.T) {
	uc := newInventoryUC()
	out, _, err := uc.AddOrRestock(addRequest("Soda", "2.50", 5))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(out.ID))
	_, err = uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(out.ID), domain.ErrNotFound)
}

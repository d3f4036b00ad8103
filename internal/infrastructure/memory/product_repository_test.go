package memory_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/infrastructure/memory"
)

func newProduct(id, name string, qty int) *entity.Product {
	return &entity.Product{
		ID:              id,
		Name:            name,
		UnitPrice:       decimal.NewFromFloat(1.50),
		Quantity:        qty,
		StorageLocation: entity.LocationInStock,
		StockStatus:     "good",
	}
}

// El listado conserva el orden de inserción y pagina con offset/limit.
func TestProductRepository_ListOrdenDeInsercion(t *testing.T) {
	repo := memory.NewProductRepository()
	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(newProduct(fmt.Sprintf("p%d", i), fmt.Sprintf("Producto %d", i), 10)))
	}

	page, total, err := repo.List(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Producto 3", page[0].Name)
	assert.Equal(t, "Producto 4", page[1].Name)

	// Offset fuera de rango: página vacía, sin error.
	empty, total, err := repo.List(10, 50)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, empty)
}

// GetByName y SearchByName comparan con case folding Unicode.
func TestProductRepository_BusquedaInsensibleAMayusculas(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("p1", "Potato Chips", 10)))
	require.NoError(t, repo.Create(newProduct("p2", "Soda", 10)))

	got, err := repo.GetByName("  POTATO chips ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ID)

	results, err := repo.SearchByName("POT")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Potato Chips", results[0].Name)

	miss, err := repo.GetByName("no existe")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

// El repositorio entrega copias: mutar lo devuelto no altera lo almacenado.
func TestProductRepository_CopiaEnLectura(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("p1", "Soda", 10)))

	got, err := repo.GetByID("p1")
	require.NoError(t, err)
	got.Quantity = 999

	again, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Quantity, "la mutación externa no debe verse sin Update")
}

func TestProductRepository_CreateIDDuplicado(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("p1", "Soda", 10)))
	assert.Error(t, repo.Create(newProduct("p1", "Otra", 1)))
}

func TestProductRepository_DeleteSacaDelListado(t *testing.T) {
	repo := memory.NewProductRepository()
	require.NoError(t, repo.Create(newProduct("p1", "Soda", 10)))
	require.NoError(t, repo.Create(newProduct("p2", "Potato Chips", 10)))

	require.NoError(t, repo.Delete("p1"))

	page, total, err := repo.List(10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "p2", page[0].ID)

	assert.ErrorIs(t, repo.Delete("p1"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(newProduct("p1", "Soda", 1)), domain.ErrNotFound)
}

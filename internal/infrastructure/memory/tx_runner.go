package memory

import (
	"github.com/tu-usuario/tienda-admin-api/internal/application/sales"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como sección crítica única sobre el inventario.
// Toma el write lock del ProductRepository durante todo el callback, de modo
// que la rutina de venta (validar todas las líneas + aplicar descuentos) no
// pueda intercalarse con otra venta ni con una mutación individual de stock.
// Es el equivalente en memoria de una transacción de base de datos.
type TxRunner struct {
	products *ProductRepository
	saleRepo repository.SaleRepository
}

// NewTxRunner construye el runner sobre los repositorios concretos.
func NewTxRunner(products *ProductRepository, saleRepo repository.SaleRepository) *TxRunner {
	return &TxRunner{products: products, saleRepo: saleRepo}
}

// Run ejecuta fn con una vista del repositorio de productos que opera bajo el
// lock ya tomado. Si fn devuelve error ninguna mutación parcial queda visible:
// el contrato de la rutina de venta es validar todo antes de mutar nada.
func (t *TxRunner) Run(fn func(products repository.ProductRepository, salesRepo repository.SaleRepository) error) error {
	t.products.mu.Lock()
	defer t.products.mu.Unlock()
	return fn(lockedProductView{t.products}, t.saleRepo)
}

// lockedProductView expone el ProductRepository sin volver a tomar el mutex.
// Solo es válida dentro de TxRunner.Run.
type lockedProductView struct {
	r *ProductRepository
}

var _ repository.ProductRepository = lockedProductView{}

func (v lockedProductView) Create(p *entity.Product) error { return v.r.create(p) }

func (v lockedProductView) GetByID(id string) (*entity.Product, error) { return v.r.getByID(id) }

func (v lockedProductView) GetByName(name string) (*entity.Product, error) {
	return v.r.getByName(name)
}

func (v lockedProductView) Update(p *entity.Product) error { return v.r.update(p) }

func (v lockedProductView) List(limit, offset int) ([]*entity.Product, int, error) {
	return v.r.list(limit, offset)
}

func (v lockedProductView) SearchByName(term string) ([]*entity.Product, error) {
	return v.r.searchByName(term)
}

func (v lockedProductView) Delete(id string) error { return v.r.delete(id) }

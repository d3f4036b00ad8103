package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/inventory"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// InventoryUseCase casos de uso CRUD del inventario.
// StockStatus nunca se asigna directamente: siempre sale de inventory.ClassifyStock.
type InventoryUseCase struct {
	repo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// AddOrRestock añade un producto nuevo o, si ya existe uno con el mismo nombre
// (sin distinguir mayúsculas), incrementa su cantidad y actualiza su ubicación.
// Devuelve created=true solo cuando se creó un producto nuevo.
func (uc *InventoryUseCase) AddOrRestock(in dto.AddProductRequest) (*dto.ProductResponse, bool, error) {
	var msgs []string
	name := strings.TrimSpace(in.Name)
	if name == "" {
		msgs = append(msgs, "el nombre del producto es requerido")
	}
	if in.UnitPrice.LessThanOrEqual(decimal.Zero) {
		msgs = append(msgs, "el precio unitario debe ser un número positivo")
	}
	if in.Quantity <= 0 {
		msgs = append(msgs, "la cantidad debe ser un entero positivo")
	}
	if !entity.ValidLocation(in.StorageLocation) {
		msgs = append(msgs, "la ubicación de almacenamiento debe ser 'in stock' o 'in warehouse'")
	}
	if len(msgs) > 0 {
		return nil, false, domain.NewValidationError(msgs...)
	}

	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Quantity += in.Quantity
		existing.StorageLocation = in.StorageLocation
		existing.StockStatus = inventory.ClassifyStock(existing.Quantity)
		existing.UpdatedAt = time.Now()
		if err := uc.repo.Update(existing); err != nil {
			return nil, false, err
		}
		return toProductResponse(existing), false, nil
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            name,
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
		StorageLocation: in.StorageLocation,
		StockStatus:     inventory.ClassifyStock(in.Quantity),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, false, err
	}
	return toProductResponse(product), true, nil
}

// List devuelve la página solicitada del inventario. page es 1-based.
// Una página fuera de rango devuelve lista vacía con los contadores correctos.
func (uc *InventoryUseCase) List(page, limit int) (*dto.InventoryListResponse, error) {
	if page < 1 {
		return nil, domain.NewValidationError("el parámetro 'page' debe ser un entero positivo")
	}
	if limit < 1 {
		return nil, domain.NewValidationError("el parámetro 'limit' debe ser un entero positivo")
	}
	products, total, err := uc.repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	totalPages := (total + limit - 1) / limit
	return &dto.InventoryListResponse{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Products:    items,
	}, nil
}

// GetByID obtiene un producto por ID. ErrNotFound si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// SearchByName busca por subcadena del nombre, sin distinguir mayúsculas.
// Cero coincidencias es un éxito con lista vacía, nunca un not-found.
func (uc *InventoryUseCase) SearchByName(term string) ([]dto.ProductResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.NewValidationError("el nombre del producto para la búsqueda es requerido")
	}
	products, err := uc.repo.SearchByName(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza precio, cantidad y/o ubicación de un producto.
// Valida todos los campos antes de aplicar cualquiera: una petición con un
// campo inválido no modifica nada.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("el id del producto es requerido")
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var msgs []string
	if in.UnitPrice != nil && in.UnitPrice.LessThanOrEqual(decimal.Zero) {
		msgs = append(msgs, "el precio unitario debe ser un número positivo")
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		msgs = append(msgs, "la cantidad debe ser un entero no negativo")
	}
	if in.StorageLocation != nil && !entity.ValidLocation(*in.StorageLocation) {
		msgs = append(msgs, "la ubicación de almacenamiento debe ser 'in stock' o 'in warehouse'")
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	if in.UnitPrice != nil {
		product.UnitPrice = *in.UnitPrice
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
		product.StockStatus = inventory.ClassifyStock(*in.Quantity)
	}
	if in.StorageLocation != nil {
		product.StorageLocation = *in.StorageLocation
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. ErrNotFound si no existe.
func (uc *InventoryUseCase) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("el id del producto es requerido")
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		UnitPrice:       p.UnitPrice,
		Quantity:        p.Quantity,
		StorageLocation: p.StorageLocation,
		StockStatus:     p.StockStatus,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

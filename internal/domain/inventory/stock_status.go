package inventory

// Estados de stock derivados de la cantidad (servicio de dominio).
const (
	StatusGood   = "good"
	StatusMedium = "medium"
	StatusLow    = "low"
)

// ClassifyStock clasifica la cantidad actual con umbrales fijos:
// > 10 -> good, > 3 -> medium, <= 3 (incluye cero) -> low.
// Es la única fuente de verdad del estado de stock: todo cambio de cantidad
// debe pasar por aquí, nadie más lo calcula ni lo cachea.
func ClassifyStock(quantity int) string {
	switch {
	case quantity > 10:
		return StatusGood
	case quantity > 3:
		return StatusMedium
	default:
		return StatusLow
	}
}

package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tienda-admin-api/internal/domain/inventory"
)

// Umbrales fijos del clasificador: > 10 good, > 3 medium, <= 3 low.
func TestClassifyStock_Umbrales(t *testing.T) {
	cases := []struct {
		quantity int
		want     string
	}{
		{0, inventory.StatusLow},
		{1, inventory.StatusLow},
		{3, inventory.StatusLow},
		{4, inventory.StatusMedium},
		{10, inventory.StatusMedium},
		{11, inventory.StatusGood},
		{100, inventory.StatusGood},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, inventory.ClassifyStock(tc.quantity),
			"cantidad %d debe clasificar como %s", tc.quantity, tc.want)
	}
}

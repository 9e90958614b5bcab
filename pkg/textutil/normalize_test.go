package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcontreras/resort-ops/pkg/textutil"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Limón", "limon"},
		{"limon", "limon"},
		{"  Agua   Mineral ", "agua mineral"},
		{"AZÚCAR", "azucar"},
		{"Piña Colada", "pina colada"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textutil.Fold(c.in), "entrada %q", c.in)
	}
}

func TestFold_NombresEquivalentesChocan(t *testing.T) {
	assert.Equal(t, textutil.Fold("Limón"), textutil.Fold("LIMON"))
	assert.Equal(t, textutil.Fold("Almacén Principal"), textutil.Fold("almacen  principal"))
}

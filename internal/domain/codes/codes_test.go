package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcontreras/resort-ops/internal/domain/codes"
)

func TestFormat_PatronesConocidos(t *testing.T) {
	cases := []struct {
		kind codes.Kind
		n    int
		want string
	}{
		{codes.KindArticle, 1, "A00001"},
		{codes.KindArticle, 42, "A00042"},
		{codes.KindMovement, 1, "M000001"},
		{codes.KindOrder, 123, "OS000123"},
		{codes.KindCustomer, 7, "C000007"},
		{codes.KindWarehouse, 3, "A003"},
		{codes.KindCategory, 12, "T012"},
		{codes.KindUser, 9, "0009"},
	}
	for _, c := range cases {
		spec, ok := codes.SpecFor(c.kind)
		require.True(t, ok, "debe existir spec para %s", c.kind)
		assert.Equal(t, c.want, spec.Format(c.n))
	}
}

func TestParse_RoundTrip(t *testing.T) {
	spec, _ := codes.SpecFor(codes.KindOrder)
	n, ok := spec.Parse("OS000123")
	require.True(t, ok)
	assert.Equal(t, 123, n)
}

func TestParse_RechazaPatronesAjenos(t *testing.T) {
	spec, _ := codes.SpecFor(codes.KindArticle) // A + 5 dígitos

	cases := []string{
		"",
		"A1",       // ancho incorrecto
		"A003",     // código de almacén, no de artículo
		"B00001",   // prefijo ajeno
		"A0000x",   // sufijo no numérico
		"A000001",  // un dígito de más
		"M000001",  // familia distinta
		"A-0001",   // signo dentro del sufijo
	}
	for _, code := range cases {
		_, ok := spec.Parse(code)
		assert.False(t, ok, "no debe aceptar %q", code)
	}
}

// NextAfter falla cerrado: un código ilegible reinicia la numeración en 1.
func TestNextAfter_FallaCerrado(t *testing.T) {
	spec, _ := codes.SpecFor(codes.KindMovement)

	assert.Equal(t, 1, spec.NextAfter(""))
	assert.Equal(t, 1, spec.NextAfter("basura"))
	assert.Equal(t, 1, spec.NextAfter("M12"))
	assert.Equal(t, 2, spec.NextAfter("M000001"))
	assert.Equal(t, 1000, spec.NextAfter("M000999"))
}

// Secuencia desde tabla vacía: 1, 2, 3 -> A00001, A00002, A00003.
func TestSecuenciaDesdeCero(t *testing.T) {
	spec, _ := codes.SpecFor(codes.KindArticle)

	highest := ""
	var got []string
	for i := 0; i < 3; i++ {
		n := spec.NextAfter(highest)
		highest = spec.Format(n)
		got = append(got, highest)
	}
	assert.Equal(t, []string{"A00001", "A00002", "A00003"}, got)
}

package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/pkg/hash"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestPassword_VectorExacto es el canario del formato de documento: el campo
// password persistido es exactamente este digest, así que si alguien cambia el
// algoritmo o la codificación, el test falla antes de romper la compatibilidad
// con los datos ya grabados.
//
// Vector: SHA-256("password") en hex minúscula.
// ──────────────────────────────────────────────────────────────────────────────
func TestPassword_VectorExacto(t *testing.T) {
	const expected = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	assert.Equal(t, expected, hash.Password("password"),
		"el digest debe coincidir con el vector SHA-256 de referencia")
}

func TestPassword_Determinista(t *testing.T) {
	d1 := hash.Password("clave secreta")
	d2 := hash.Password("clave secreta")
	assert.Equal(t, d1, d2, "el mismo password siempre produce el mismo digest")
}

func TestPassword_Longitud(t *testing.T) {
	require.Len(t, hash.Password(""), 64,
		"el digest debe tener 64 caracteres hexadecimales (SHA-256)")
	require.Len(t, hash.Password("x"), 64)
}

func TestPassword_SensibleAlInput(t *testing.T) {
	assert.NotEqual(t, hash.Password("password"), hash.Password("Password"),
		"passwords distintos deben producir digests distintos")
}

// Sin salt: dos usuarios con el mismo password comparten digest. Es una
// debilidad aceptada del formato actual y el test la documenta.
func TestPassword_SinSalt(t *testing.T) {
	assert.Equal(t, hash.Password("compartida"), hash.Password("compartida"))
}

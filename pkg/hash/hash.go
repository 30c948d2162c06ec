// Package hash implementa el hasher de credenciales de la tienda.
//
// El digest es SHA-256 en hexadecimal minúscula (64 caracteres), determinista y
// sin salt: el documento persistido guarda exactamente este valor, por lo que
// cambiar el algoritmo rompería la compatibilidad con los datos ya grabados.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// Password devuelve el digest SHA-256 hex del password en claro.
// Dos usuarios con el mismo password producen el mismo digest (debilidad
// aceptada del formato de documento actual).
func Password(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

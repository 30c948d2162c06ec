// Package secret ofrece el par de utilidades de clave simétrica y cifrado de
// texto de la tienda: generar/cargar una clave desde un archivo local y
// cifrar/descifrar texto arbitrario con ella. Ningún camino del núcleo lo
// invoca hoy; se mantiene como capacidad independiente y testeable.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
)

// KeySize tamaño en bytes de la clave simétrica.
const KeySize = 32

const nonceSize = 24

// ErrDecrypt el texto cifrado no autentica con la clave dada.
var ErrDecrypt = errors.New("no se pudo descifrar: clave o datos inválidos")

// GenerateKey crea una clave simétrica aleatoria.
func GenerateKey() (*[KeySize]byte, error) {
	var key [KeySize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, fmt.Errorf("generar clave: %w", err)
	}
	return &key, nil
}

// LoadKey carga la clave desde el archivo indicado; si no existe genera una
// nueva y la deja escrita (0600, base64) para las siguientes ejecuciones.
func LoadKey(path string) (*[KeySize]byte, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		return decodeKey(raw)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(key[:])
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("escribir %s: %w", path, err)
	}
	return key, nil
}

// Encrypt cifra el texto con secretbox (nonce aleatorio antepuesto) y lo
// devuelve en base64 apto para transporte textual.
func Encrypt(key *[KeySize]byte, plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generar nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt invierte Encrypt. Devuelve ErrDecrypt si la clave no corresponde o
// los datos fueron alterados.
func Decrypt(key *[KeySize]byte, encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decodificar base64: %w", err)
	}
	if len(sealed) < nonceSize {
		return "", ErrDecrypt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, key)
	if !ok {
		return "", ErrDecrypt
	}
	return string(plain), nil
}

func decodeKey(raw []byte) (*[KeySize]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("decodificar clave: %w", err)
	}
	if len(decoded) != KeySize {
		return nil, fmt.Errorf("clave de %d bytes, se esperaban %d", len(decoded), KeySize)
	}
	var key [KeySize]byte
	copy(key[:], decoded)
	return &key, nil
}

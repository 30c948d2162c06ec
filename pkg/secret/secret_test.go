package secret_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/pkg/secret"
)

func TestEncryptDecrypt_IdaYVuelta(t *testing.T) {
	key, err := secret.GenerateKey()
	require.NoError(t, err)

	cipher, err := secret.Encrypt(key, "texto con acentos y Кириллица")
	require.NoError(t, err)
	assert.NotContains(t, cipher, "texto", "el cifrado no deja el claro a la vista")

	plain, err := secret.Decrypt(key, cipher)
	require.NoError(t, err)
	assert.Equal(t, "texto con acentos y Кириллица", plain)
}

func TestEncrypt_NonceAleatorio(t *testing.T) {
	key, err := secret.GenerateKey()
	require.NoError(t, err)

	c1, err := secret.Encrypt(key, "mismo texto")
	require.NoError(t, err)
	c2, err := secret.Encrypt(key, "mismo texto")
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2, "cada cifrado usa un nonce distinto")
}

func TestDecrypt_ClaveEquivocada(t *testing.T) {
	k1, err := secret.GenerateKey()
	require.NoError(t, err)
	k2, err := secret.GenerateKey()
	require.NoError(t, err)

	cipher, err := secret.Encrypt(k1, "secreto")
	require.NoError(t, err)

	_, err = secret.Decrypt(k2, cipher)
	assert.ErrorIs(t, err, secret.ErrDecrypt)
}

func TestDecrypt_DatosAlterados(t *testing.T) {
	key, err := secret.GenerateKey()
	require.NoError(t, err)

	_, err = secret.Decrypt(key, "bm8gZXMgdW4gY2lmcmFkbyByZWFs")
	assert.ErrorIs(t, err, secret.ErrDecrypt)

	_, err = secret.Decrypt(key, "esto no es base64!!!")
	assert.Error(t, err)
}

func TestLoadKey_CreaYRecarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")

	k1, err := secret.LoadKey(path)
	require.NoError(t, err, "sin archivo debe generar y dejar escrita la clave")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(),
		"el archivo de clave no debe ser legible por otros")

	k2, err := secret.LoadKey(path)
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "cargas sucesivas devuelven la misma clave")
}

func TestLoadKey_ArchivoInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte("no-es-una-clave"), 0o600))

	_, err := secret.LoadKey(path)
	assert.Error(t, err)
}

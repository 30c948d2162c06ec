package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/hash"
)

func TestUser_AuthenticateConPasswordCorrecto(t *testing.T) {
	u := entity.NewRegularUser("john", "secreto")
	assert.True(t, u.Authenticate("secreto"),
		"un usuario recién creado debe autenticar con su password")
	assert.False(t, u.Authenticate("otro"),
		"cualquier otro password debe fallar")
	assert.False(t, u.Authenticate(""),
		"el password vacío no es el password")
}

func TestUser_UpdatePasswordReemplazaElDigest(t *testing.T) {
	u := entity.NewAdmin("admin", "inicial")
	u.UpdatePassword("nueva")

	assert.False(t, u.Authenticate("inicial"), "el password anterior deja de valer")
	assert.True(t, u.Authenticate("nueva"), "el nuevo password autentica")
	assert.Equal(t, hash.Password("nueva"), u.Record().Password,
		"el registro exporta el digest vigente, nunca el claro")
}

func TestUser_VarianteFijaEnConstruccion(t *testing.T) {
	admin := entity.NewAdmin("a", "x")
	regular := entity.NewRegularUser("r", "x")

	assert.Equal(t, entity.RoleAdmin, admin.Role())
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, entity.RoleUser, regular.Role())
	assert.False(t, regular.IsAdmin())
}

func TestUser_HistorialAppendOnlyYCopiado(t *testing.T) {
	u := entity.NewRegularUser("john", "x")
	u.RecordPurchase("Роза")
	u.RecordPurchase("Lirio")

	require.Equal(t, []string{"Роза", "Lirio"}, u.History(),
		"el historial conserva el orden de compra")

	// History devuelve una copia: mutarla no toca la entidad
	h := u.History()
	h[0] = "alterado"
	assert.Equal(t, []string{"Роза", "Lirio"}, u.History())
}

func TestUser_RecordExportaTodoElEstado(t *testing.T) {
	u := entity.NewRegularUser("john", "secreto")
	u.RecordPurchase("Rosa")

	rec := u.Record()
	assert.Equal(t, "john", rec.Username)
	assert.Equal(t, hash.Password("secreto"), rec.Password)
	assert.Equal(t, entity.RoleUser, rec.Role)
	assert.Equal(t, []string{"Rosa"}, rec.History)
	assert.Equal(t, time.Now().Format(entity.DateLayout), rec.CreatedAt,
		"created_at es la fecha calendario de creación")
}

func TestRehydrateUser_NoVuelveAHashear(t *testing.T) {
	digest := hash.Password("secreto")
	created := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	u := entity.RehydrateUser("john", digest, entity.RoleUser, []string{"Rosa"}, created)

	assert.True(t, u.Authenticate("secreto"),
		"el digest almacenado debe seguir validando el password original")
	assert.Equal(t, []string{"Rosa"}, u.History(), "el historial se restaura")
	assert.Equal(t, created, u.CreatedAt(), "created_at se restaura")
}

func TestRehydrateUser_RolDesconocidoCaeEnRegular(t *testing.T) {
	u := entity.RehydrateUser("x", "digest", "gerente", nil, time.Now())
	assert.Equal(t, entity.RoleUser, u.Role(),
		"cualquier rol distinto de admin reconstruye un usuario regular")
	assert.NotNil(t, u.History())
}

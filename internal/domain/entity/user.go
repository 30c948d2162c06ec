package entity

import (
	"time"

	"github.com/jhoicas/tienda-cli/pkg/hash"
)

// Roles válidos para User. La variante se fija en la construcción y nunca cambia;
// toda decisión admin/usuario se toma sobre esta etiqueta, nunca sobre el tipo.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DateLayout formato de fecha calendario usado en el documento persistido.
const DateLayout = "2006-01-02"

// User representa una identidad de la tienda (admin o usuario regular).
// Los campos son privados: el resto del sistema solo ve los contratos de
// lectura/mutación de abajo y el export Record() para persistencia.
// passwordHash guarda siempre el digest del password vigente, nunca el claro.
type User struct {
	username     string
	passwordHash string
	role         string
	history      []string
	createdAt    time.Time
}

// NewAdmin crea un administrador a partir del password en claro.
func NewAdmin(username, password string) *User {
	return newUser(username, password, RoleAdmin)
}

// NewRegularUser crea un usuario regular a partir del password en claro.
func NewRegularUser(username, password string) *User {
	return newUser(username, password, RoleUser)
}

func newUser(username, password, role string) *User {
	return &User{
		username:     username,
		passwordHash: hash.Password(password),
		role:         role,
		history:      []string{},
		createdAt:    time.Now(),
	}
}

// RehydrateUser reconstruye un usuario desde el documento persistido.
// passwordHash llega ya hasheado del registro: aquí no se vuelve a hashear.
func RehydrateUser(username, passwordHash, role string, history []string, createdAt time.Time) *User {
	if role != RoleAdmin {
		role = RoleUser
	}
	if history == nil {
		history = []string{}
	}
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		history:      history,
		createdAt:    createdAt,
	}
}

// Username devuelve la clave de identidad del usuario.
func (u *User) Username() string { return u.username }

// Role devuelve la etiqueta de variante ("admin" o "user").
func (u *User) Role() string { return u.role }

// IsAdmin indica si la variante es administradora.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

// CreatedAt devuelve la fecha de alta (inmutable).
func (u *User) CreatedAt() time.Time { return u.createdAt }

// History devuelve una copia del historial de compras (append-only por nombre
// de producto; los nombres no son referencias vivas al catálogo).
func (u *User) History() []string {
	out := make([]string, len(u.history))
	copy(out, u.history)
	return out
}

// Authenticate compara el digest del candidato contra el digest almacenado.
func (u *User) Authenticate(candidate string) bool {
	return u.passwordHash == hash.Password(candidate)
}

// UpdatePassword reemplaza el digest por el del nuevo password.
// Solo muta la entidad; persistir es decisión del orquestador.
func (u *User) UpdatePassword(newPassword string) {
	u.passwordHash = hash.Password(newPassword)
}

// RecordPurchase agrega un nombre de producto al historial.
func (u *User) RecordPurchase(productName string) {
	u.history = append(u.history, productName)
}

// UserRecord es la representación de un User dentro del documento persistido.
// Password transporta el digest, nunca el password en claro.
type UserRecord struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	History   []string `json:"history"`
	CreatedAt string   `json:"created_at"`
}

// Record exporta el estado completo del usuario para el códec de persistencia.
func (u *User) Record() UserRecord {
	return UserRecord{
		Username:  u.username,
		Password:  u.passwordHash,
		Role:      u.role,
		History:   u.History(),
		CreatedAt: u.createdAt.Format(DateLayout),
	}
}

package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// ShopState es el estado completo de la tienda tal como se persiste: las dos
// colecciones en orden de inserción.
type ShopState struct {
	Users    []*entity.User
	Products []*entity.Product
}

// ShopRepository define el puerto de persistencia del estado de la tienda (DIP).
// Save sobreescribe el documento completo (todo-o-nada en el borde de escritura);
// Load devuelve colecciones vacías si el documento no existe todavía.
type ShopRepository interface {
	Load() (*ShopState, error)
	Save(state *ShopState) error
}

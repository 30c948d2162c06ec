// Package shop implementa el caso de uso central de la tienda: dueño único de
// las colecciones en memoria de usuarios y productos, y único punto que decide
// cuándo persistir (las entidades solo mutan su propio estado).
package shop

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Shop mantiene el estado en memoria y orquesta carga/guardado a través del
// puerto de persistencia. Nace sin inicializar; Load() lo deja listo (en la
// práctica Load corre siempre inmediatamente después de construirlo).
type Shop struct {
	repo     repository.ShopRepository
	log      *logger.Logger
	users    []*entity.User
	products []*entity.Product
}

// New construye la tienda sobre un repositorio de estado.
func New(repo repository.ShopRepository, log *logger.Logger) *Shop {
	return &Shop{repo: repo, log: log}
}

// Load decodifica el documento persistido en las dos colecciones. Si el
// documento no existe las colecciones quedan vacías y el llamador siembra los
// valores por defecto. Un documento malformado aborta la carga con error
// reportable y deja la tienda en su estado previo (vacío), nunca tumba el
// proceso.
func (s *Shop) Load() error {
	state, err := s.repo.Load()
	if err != nil {
		return err
	}
	s.users = state.Users
	s.products = state.Products
	s.log.Debug().
		Int("users", len(s.users)).
		Int("products", len(s.products)).
		Msg("estado cargado")
	return nil
}

// Save serializa el estado completo sobreescribiendo el documento.
func (s *Shop) Save() error {
	return s.persist()
}

// AddUser agrega un usuario a la colección. No verifica unicidad de username:
// el llamador (la siembra inicial) consulta UserExists antes.
func (s *Shop) AddUser(u *entity.User) {
	s.users = append(s.users, u)
}

// SeedProduct agrega un producto sin pasar por el chequeo de rol admin.
// Solo la siembra inicial lo usa; pre-verifica unicidad con ProductExists.
func (s *Shop) SeedProduct(p *entity.Product) {
	s.products = append(s.products, p)
}

// UserExists indica si ya hay un usuario con ese username.
func (s *Shop) UserExists(username string) bool {
	for _, u := range s.users {
		if u.Username() == username {
			return true
		}
	}
	return false
}

// ProductExists indica si ya hay un producto con ese nombre.
func (s *Shop) ProductExists(name string) bool {
	return s.findProduct(name) != nil
}

// Usernames devuelve los usernames en orden de inserción.
func (s *Shop) Usernames() []string {
	out := make([]string, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Username())
	}
	return out
}

// Authenticate recorre la colección y devuelve el primer usuario cuyo username
// coincide y cuyo digest valida el password. Sin bloqueo ni conteo de intentos.
func (s *Shop) Authenticate(username, password string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username() == username && u.Authenticate(password) {
			return u, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// ViewProducts devuelve el catálogo como vistas, en orden de inserción.
func (s *Shop) ViewProducts() []dto.ProductView {
	return toViews(s.products)
}

// FilterProductsByPrice devuelve los productos con precio estrictamente menor
// al umbral (price == threshold queda excluido).
func (s *Shop) FilterProductsByPrice(threshold decimal.Decimal) []dto.ProductView {
	filtered := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Price().LessThan(threshold) {
			filtered = append(filtered, p)
		}
	}
	return toViews(filtered)
}

// SortProductsByPrice devuelve el catálogo ordenado por precio ascendente.
// El orden es estable (empates conservan el orden de inserción) y se aplica
// sobre una copia: la colección almacenada no se toca.
func (s *Shop) SortProductsByPrice() []dto.ProductView {
	views := toViews(s.products)
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Price.LessThan(views[j].Price)
	})
	return views
}

// AddProduct da de alta un producto en el catálogo y persiste. Solo la
// variante admin puede ejecutarlo (chequeo sobre la etiqueta de rol). La
// unicidad del nombre es responsabilidad del llamador.
func (s *Shop) AddProduct(actor *entity.User, in dto.AddProductRequest) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	p := entity.NewProduct(in.Name, decimal.NewFromFloat(in.Price), in.Rating)
	s.products = append(s.products, p)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info().Str("product", in.Name).Msg("producto agregado")
	return nil
}

// RemoveProduct elimina el primer producto con ese nombre y persiste.
// Si no existe devuelve ErrProductNotFound y el catálogo queda igual.
func (s *Shop) RemoveProduct(actor *entity.User, name string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	for i, p := range s.products {
		if p.Name() == name {
			s.products = append(s.products[:i], s.products[i+1:]...)
			if err := s.persist(); err != nil {
				return err
			}
			s.log.Info().Str("product", name).Msg("producto eliminado")
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// BuyProduct registra la compra en el historial del actor y persiste. Comprar
// no descuenta stock ni quita el producto: el catálogo no maneja cantidades.
// Si el producto no existe el historial queda intacto.
func (s *Shop) BuyProduct(actor *entity.User, name string) error {
	if actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if s.findProduct(name) == nil {
		return domain.ErrProductNotFound
	}
	actor.RecordPurchase(name)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info().Str("user", actor.Username()).Str("product", name).Msg("compra registrada")
	return nil
}

// ChangePassword reemplaza el digest del actor y persiste.
func (s *Shop) ChangePassword(actor *entity.User, newPassword string) error {
	actor.UpdatePassword(newPassword)
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info().Str("user", actor.Username()).Msg("password actualizado")
	return nil
}

func (s *Shop) findProduct(name string) *entity.Product {
	for _, p := range s.products {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (s *Shop) persist() error {
	state := &repository.ShopState{Users: s.users, Products: s.products}
	if err := s.repo.Save(state); err != nil {
		return fmt.Errorf("guardar estado de la tienda: %w", err)
	}
	return nil
}

func toViews(products []*entity.Product) []dto.ProductView {
	out := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductView{
			Name:    p.Name(),
			Price:   p.Price(),
			Rating:  p.Rating(),
			AddedAt: p.AddedAt(),
		})
	}
	return out
}

// Package jsonfile implementa el puerto ShopRepository sobre un único
// documento JSON legible (UTF-8), el mismo formato que usaba la versión
// original de la tienda: dos arreglos de nivel superior, users y products.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo adaptador de persistencia del estado de la tienda sobre archivo JSON.
type ShopRepo struct {
	path string
	log  *logger.Logger
}

// NewShopRepository construye el adaptador para la ruta dada.
func NewShopRepository(path string, log *logger.Logger) *ShopRepo {
	return &ShopRepo{path: path, log: log}
}

// document es la estructura de decodificación. Los arreglos de nivel superior
// son punteros para distinguir "ausente" (documento malformado) de "vacío".
type document struct {
	Users    *[]userRecord    `json:"users"`
	Products *[]productRecord `json:"products"`
}

// userRecord registro crudo de usuario. Password transporta el digest ya
// hasheado: la decodificación nunca vuelve a hashear.
type userRecord struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	History   []string `json:"history"`
	CreatedAt string   `json:"created_at"`
}

// productRecord registro crudo de producto. Price y Rating son punteros para
// detectar campos requeridos ausentes en la decodificación.
type productRecord struct {
	Name    string   `json:"name"`
	Price   *float64 `json:"price"`
	Rating  *float64 `json:"rating"`
	AddedAt string   `json:"added_at"`
}

// Load decodifica el documento. Si el archivo no existe devuelve colecciones
// vacías sin error (primer arranque: el llamador siembra). Un documento no
// parseable o sin los arreglos requeridos devuelve ErrMalformedDocument. Un
// registro individual incompleto se salta con warning y el resto sigue.
func (r *ShopRepo) Load() (*repository.ShopState, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Debug().Str("file", r.path).Msg("documento inexistente, estado vacío")
			return &repository.ShopState{}, nil
		}
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
	}
	if doc.Users == nil || doc.Products == nil {
		return nil, fmt.Errorf("%w: faltan los arreglos users/products", domain.ErrMalformedDocument)
	}

	state := &repository.ShopState{}
	for i, rec := range *doc.Users {
		u, err := r.decodeUser(rec)
		if err != nil {
			r.log.Warn().Int("index", i).Err(err).Msg("registro de usuario incompleto, se omite")
			continue
		}
		state.Users = append(state.Users, u)
	}
	for i, rec := range *doc.Products {
		p, err := decodeProduct(rec)
		if err != nil {
			r.log.Warn().Int("index", i).Err(err).Msg("registro de producto incompleto, se omite")
			continue
		}
		state.Products = append(state.Products, p)
	}

	r.log.Info().
		Str("file", r.path).
		Int("users", len(state.Users)).
		Int("products", len(state.Products)).
		Msg("documento cargado")
	return state, nil
}

// Save codifica el estado completo y sobreescribe el documento. La escritura
// es todo-o-nada: archivo temporal en el mismo directorio y rename, de modo
// que un fallo de escritura no corrompe el documento anterior.
func (r *ShopRepo) Save(state *repository.ShopState) error {
	doc := struct {
		Users    []entity.UserRecord    `json:"users"`
		Products []entity.ProductRecord `json:"products"`
	}{
		Users:    make([]entity.UserRecord, 0, len(state.Users)),
		Products: make([]entity.ProductRecord, 0, len(state.Products)),
	}
	for _, u := range state.Users {
		doc.Users = append(doc.Users, u.Record())
	}
	for _, p := range state.Products {
		doc.Products = append(doc.Products, p.Record())
	}

	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".shop_data-*.tmp")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}

	r.log.Debug().Str("file", r.path).Msg("documento guardado")
	return nil
}

func (r *ShopRepo) decodeUser(rec userRecord) (*entity.User, error) {
	if rec.Username == "" || rec.Password == "" || rec.Role == "" {
		return nil, errors.New("faltan username, password o role")
	}
	createdAt, err := time.Parse(entity.DateLayout, rec.CreatedAt)
	if err != nil {
		// created_at ausente o ilegible no invalida el registro
		createdAt = time.Now()
	}
	return entity.RehydrateUser(rec.Username, rec.Password, rec.Role, rec.History, createdAt), nil
}

// decodeProduct reconstruye el producto con fecha de alta fresca: el added_at
// original no se restaura (comportamiento heredado del formato).
func decodeProduct(rec productRecord) (*entity.Product, error) {
	if rec.Name == "" || rec.Price == nil || rec.Rating == nil {
		return nil, errors.New("faltan name, price o rating")
	}
	return entity.NewProduct(rec.Name, decimal.NewFromFloat(*rec.Price), *rec.Rating), nil
}

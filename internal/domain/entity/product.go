package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo. El nombre es la única clave de
// búsqueda (no hay id sustituto); la unicidad la garantiza quien da de alta.
// La entidad no valida rangos: price/rating se verifican en el borde de entrada,
// por lo que una recarga desde un documento corrupto puede traer un rating
// fuera de 0–5 sin que nadie lo rechace.
type Product struct {
	name    string
	price   decimal.Decimal
	rating  float64
	addedAt time.Time
}

// NewProduct construye un producto con fecha de alta del momento de creación.
func NewProduct(name string, price decimal.Decimal, rating float64) *Product {
	return &Product{
		name:    name,
		price:   price,
		rating:  rating,
		addedAt: time.Now(),
	}
}

// Name devuelve el nombre (clave de catálogo).
func (p *Product) Name() string { return p.name }

// Price devuelve el precio de venta.
func (p *Product) Price() decimal.Decimal { return p.price }

// Rating devuelve la calificación registrada al alta.
func (p *Product) Rating() float64 { return p.rating }

// AddedAt devuelve la fecha de alta (inmutable).
func (p *Product) AddedAt() time.Time { return p.addedAt }

// ProductRecord es la representación de un Product dentro del documento
// persistido. Price viaja como número JSON.
type ProductRecord struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Rating  float64 `json:"rating"`
	AddedAt string  `json:"added_at"`
}

// Record exporta el estado del producto para el códec de persistencia.
func (p *Product) Record() ProductRecord {
	return ProductRecord{
		Name:    p.name,
		Price:   p.price.InexactFloat64(),
		Rating:  p.rating,
		AddedAt: p.addedAt.Format(DateLayout),
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductRequest entrada del alta de producto. Las etiquetas validate se
// aplican en el borde interactivo (CLI); a la entidad nunca llega un rating
// fuera de rango por esta vía.
type AddProductRequest struct {
	Name   string  `validate:"required"`
	Price  float64 `validate:"gte=0"`
	Rating float64 `validate:"gte=0,lte=5"`
}

// ProductView fila de solo lectura para los listados del catálogo. El caso de
// uso nunca expone la entidad por referencia: siempre mapea a esta vista.
type ProductView struct {
	Name    string
	Price   decimal.Decimal
	Rating  float64
	AddedAt time.Time
}

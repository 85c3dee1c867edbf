package models

import (
	"time"
)

// Tipos de deuda
const (
	TipoDeudaTarjeta = "T"
	TipoDeudaOtro    = "O"
)

// Deuda es un registro de obligación pendiente.
type Deuda struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Tipo      string    `json:"tipo" gorm:"size:10;not null"` // T=Tarjeta, O=Otro
	Item      string    `json:"item" gorm:"size:255;not null"`
	Monto     float64   `json:"monto" gorm:"type:decimal(10,2);not null"`
	Fecha     time.Time `json:"fecha" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName fija el nombre de la tabla
func (Deuda) TableName() string {
	return "deudas"
}

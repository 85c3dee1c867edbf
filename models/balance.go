package models

import (
	"math"
	"time"
)

// Tipos de balance (código corto almacenado)
const (
	TipoBalanceDebito    = "D"
	TipoBalanceInversion = "I"
)

// Balance es un registro de conciliación: lo que hay contra lo que debería haber.
type Balance struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Tipo        string    `json:"tipo" gorm:"size:20;not null"` // D=Débito, I=Inversión
	Concepto    string    `json:"concepto" gorm:"size:255;not null"`
	Monto       float64   `json:"monto" gorm:"type:decimal(10,2);not null"`
	DebenSer    float64   `json:"deben_ser" gorm:"type:decimal(10,2);default:0"`
	Diferencia  float64   `json:"diferencia" gorm:"type:decimal(10,2);default:0"` // monto - deben_ser, siempre calculado
	Comentarios string    `json:"comentarios" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName fija el nombre de la tabla
func (Balance) TableName() string {
	return "balance"
}

// Diferencia calcula monto - deben_ser redondeado a 2 decimales.
// El valor que mande el cliente nunca se respeta; siempre se recalcula.
func Diferencia(monto, debenSer float64) float64 {
	return math.Round((monto-debenSer)*100) / 100
}

// TipoBalanceCorto convierte el tipo a formato corto para almacenamiento.
// Valores desconocidos pasan sin cambio.
func TipoBalanceCorto(tipo string) string {
	switch tipo {
	case "Débito", TipoBalanceDebito:
		return TipoBalanceDebito
	case "Inversión", TipoBalanceInversion:
		return TipoBalanceInversion
	}
	return tipo
}

// TipoBalanceLargo convierte el código corto a su etiqueta legible.
// Valores desconocidos pasan sin cambio.
func TipoBalanceLargo(tipo string) string {
	switch tipo {
	case TipoBalanceDebito:
		return "Débito"
	case TipoBalanceInversion:
		return "Inversión"
	}
	return tipo
}

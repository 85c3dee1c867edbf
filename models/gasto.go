package models

import (
	"time"
)

// Gasto es un registro de gasto o ingreso fechado.
type Gasto struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Concepto   string    `json:"concepto" gorm:"size:255;not null"`
	Monto      float64   `json:"monto" gorm:"type:decimal(10,2);not null"`
	TipoGasto  string    `json:"tipo_gasto" gorm:"size:20;not null"`
	FormaPago  string    `json:"forma_pago" gorm:"size:100;not null"`
	Mes        string    `json:"mes" gorm:"size:20;not null"`
	Anio       int       `json:"anio" gorm:"not null"`
	FechaCargo time.Time `json:"fecha_cargo" gorm:"type:date;not null"`
	FechaPago  time.Time `json:"fecha_pago" gorm:"type:date;not null"`
	Categoria  string    `json:"categoria" gorm:"size:5;not null"`
	APagos     bool      `json:"a_pagos" gorm:"default:false"`
	NoMens     int       `json:"no_mens" gorm:"default:0"`
	TotalMeses int       `json:"total_meses" gorm:"default:0"`
	Tag        string    `json:"tag" gorm:"size:50;default:NA"`
	SeDivide   bool      `json:"se_divide" gorm:"default:false"`
	GastoXMes  string    `json:"gasto_x_mes" gorm:"size:20;default:NA"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName fija el nombre de la tabla
func (Gasto) TableName() string {
	return "gastos"
}

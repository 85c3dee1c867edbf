package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeudaHandler maneja los registros de deudas
type DeudaHandler struct{}

// NewDeudaHandler crea el handler de deudas
func NewDeudaHandler() *DeudaHandler {
	return &DeudaHandler{}
}

// CreateDeudaRequest petición para crear una deuda
type CreateDeudaRequest struct {
	Tipo  string  `json:"tipo" binding:"required,min=1,max=10" example:"T"`
	Item  string  `json:"item" binding:"required,min=1,max=255" example:"Tarjeta BBVA"`
	Monto float64 `json:"monto" binding:"required,gt=0" example:"1250.50"`
	Fecha string  `json:"fecha" binding:"required" example:"2025-01-15"`
}

// UpdateDeudaRequest petición de actualización parcial de una deuda
type UpdateDeudaRequest struct {
	Tipo  *string  `json:"tipo" binding:"omitempty,min=1,max=10"`
	Item  *string  `json:"item" binding:"omitempty,min=1,max=255"`
	Monto *float64 `json:"monto" binding:"omitempty,gt=0"`
	Fecha *string  `json:"fecha"`
}

// List lista todas las deudas ordenadas por fecha descendente
// @Summary Listar deudas
// @Tags deudas
// @Produce json
// @Success 200 {object} Response{data=[]models.Deuda}
// @Router /api/deudas [get]
func (h *DeudaHandler) List(c *gin.Context) {
	deudas := make([]models.Deuda, 0)
	if err := database.DB.Order("fecha DESC").Find(&deudas).Error; err != nil {
		InternalError(c, err, "Error al consultar las deudas")
		return
	}
	Success(c, deudas)
}

// Get obtiene una deuda por ID
// @Summary Obtener deuda
// @Tags deudas
// @Produce json
// @Param id path int true "ID de la deuda"
// @Success 200 {object} Response{data=models.Deuda}
// @Failure 404 {object} Response "Deuda no encontrada"
// @Router /api/deudas/{id} [get]
func (h *DeudaHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var deuda models.Deuda
	if err := database.DB.First(&deuda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Deuda con ID %d no encontrada", id))
			return
		}
		InternalError(c, err, "Error al consultar la deuda")
		return
	}

	Success(c, deuda)
}

// Create crea una deuda
// @Summary Crear deuda
// @Tags deudas
// @Accept json
// @Produce json
// @Param request body CreateDeudaRequest true "Datos de la deuda"
// @Success 201 {object} Response{data=models.Deuda} "Deuda creada"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Router /api/deudas [post]
func (h *DeudaHandler) Create(c *gin.Context) {
	var req CreateDeudaRequest
	if !bindJSON(c, &req) {
		return
	}

	fecha, err := time.ParseInLocation(fechaLayout, req.Fecha, time.Local)
	if err != nil {
		BadRequest(c, "fecha inválida, formato esperado: 2006-01-02")
		return
	}

	deuda := models.Deuda{
		Tipo:  req.Tipo,
		Item:  req.Item,
		Monto: req.Monto,
		Fecha: fecha,
	}

	if err := database.DB.Create(&deuda).Error; err != nil {
		InternalError(c, err, "Error al crear la deuda")
		return
	}

	Created(c, "Deuda creada exitosamente", deuda)
}

// Update actualiza parcialmente una deuda
// @Summary Actualizar deuda
// @Tags deudas
// @Accept json
// @Produce json
// @Param id path int true "ID de la deuda"
// @Param request body UpdateDeudaRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Deuda} "Deuda actualizada"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Failure 404 {object} Response "Deuda no encontrada"
// @Router /api/deudas/{id} [put]
func (h *DeudaHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var deuda models.Deuda
	if err := database.DB.First(&deuda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Deuda con ID %d no encontrada", id))
			return
		}
		InternalError(c, err, "Error al consultar la deuda")
		return
	}

	var req UpdateDeudaRequest
	if !bindJSON(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Tipo != nil {
		updates["tipo"] = *req.Tipo
	}
	if req.Item != nil {
		updates["item"] = *req.Item
	}
	if req.Monto != nil {
		updates["monto"] = *req.Monto
	}
	if req.Fecha != nil {
		fecha, err := time.ParseInLocation(fechaLayout, *req.Fecha, time.Local)
		if err != nil {
			BadRequest(c, "fecha inválida, formato esperado: 2006-01-02")
			return
		}
		updates["fecha"] = fecha
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&deuda).Updates(updates).Error; err != nil {
			InternalError(c, err, "Error al actualizar la deuda")
			return
		}
		database.DB.First(&deuda, deuda.ID)
	}

	SuccessWithMessage(c, "Deuda actualizada exitosamente", deuda)
}

// Delete elimina una deuda
// @Summary Eliminar deuda
// @Tags deudas
// @Produce json
// @Param id path int true "ID de la deuda"
// @Success 200 {object} Response "Deuda eliminada"
// @Failure 404 {object} Response "Deuda no encontrada"
// @Router /api/deudas/{id} [delete]
func (h *DeudaHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var deuda models.Deuda
	if err := database.DB.First(&deuda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Deuda con ID %d no encontrada", id))
			return
		}
		InternalError(c, err, "Error al consultar la deuda")
		return
	}

	if err := database.DB.Delete(&deuda).Error; err != nil {
		InternalError(c, err, "Error al eliminar la deuda")
		return
	}

	SuccessWithMessage(c, "Deuda eliminada exitosamente", nil)
}

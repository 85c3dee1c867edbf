package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/JFRG28/money-monitor-vWeb/config"
	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BalanceHandler maneja los registros de balance
type BalanceHandler struct {
	cfg *config.Config
}

// NewBalanceHandler crea el handler de balance
func NewBalanceHandler(cfg *config.Config) *BalanceHandler {
	return &BalanceHandler{cfg: cfg}
}

// CreateBalanceRequest petición para crear un balance.
// La diferencia nunca se toma del cliente; siempre se calcula.
type CreateBalanceRequest struct {
	Tipo        string  `json:"tipo" binding:"required,min=1,max=20" example:"D"`
	Concepto    string  `json:"concepto" binding:"required,min=1,max=255" example:"Efectivo"`
	Monto       float64 `json:"monto" binding:"required,gt=0" example:"500.00"`
	DebenSer    float64 `json:"deben_ser" binding:"gte=0" example:"450.00"`
	Comentarios string  `json:"comentarios" binding:"omitempty,max=500"`
}

// UpdateBalanceRequest petición de actualización parcial de un balance
type UpdateBalanceRequest struct {
	Tipo        *string  `json:"tipo" binding:"omitempty,min=1,max=20"`
	Concepto    *string  `json:"concepto" binding:"omitempty,min=1,max=255"`
	Monto       *float64 `json:"monto" binding:"omitempty,gt=0"`
	DebenSer    *float64 `json:"deben_ser" binding:"omitempty,gte=0"`
	Comentarios *string  `json:"comentarios" binding:"omitempty,max=500"`
}

// respuesta traduce el tipo a formato largo cuando la bandera está activa.
// La traducción vive en la frontera del API, nunca en el almacenamiento.
func (h *BalanceHandler) respuesta(b models.Balance) models.Balance {
	if h.cfg != nil && h.cfg.API.ExpandirTipoBalance {
		b.Tipo = models.TipoBalanceLargo(b.Tipo)
	}
	return b
}

func (h *BalanceHandler) respuestaLista(balances []models.Balance) []models.Balance {
	out := make([]models.Balance, 0, len(balances))
	for _, b := range balances {
		out = append(out, h.respuesta(b))
	}
	return out
}

// List lista todos los balances
// @Summary Listar balances
// @Tags balance
// @Produce json
// @Success 200 {object} Response{data=[]models.Balance}
// @Router /api/balance [get]
func (h *BalanceHandler) List(c *gin.Context) {
	var balances []models.Balance
	if err := database.DB.Find(&balances).Error; err != nil {
		InternalError(c, err, "Error al consultar los balances")
		return
	}
	Success(c, h.respuestaLista(balances))
}

// Get obtiene un balance por ID
// @Summary Obtener balance
// @Tags balance
// @Produce json
// @Param id path int true "ID del balance"
// @Success 200 {object} Response{data=models.Balance}
// @Failure 404 {object} Response "Balance no encontrado"
// @Router /api/balance/{id} [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var balance models.Balance
	if err := database.DB.First(&balance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Balance con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el balance")
		return
	}

	Success(c, h.respuesta(balance))
}

// Create crea un balance; la diferencia se calcula como monto - deben_ser
// @Summary Crear balance
// @Tags balance
// @Accept json
// @Produce json
// @Param request body CreateBalanceRequest true "Datos del balance"
// @Success 201 {object} Response{data=models.Balance} "Balance creado"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Router /api/balance [post]
func (h *BalanceHandler) Create(c *gin.Context) {
	var req CreateBalanceRequest
	if !bindJSON(c, &req) {
		return
	}

	balance := models.Balance{
		Tipo:        models.TipoBalanceCorto(req.Tipo),
		Concepto:    req.Concepto,
		Monto:       req.Monto,
		DebenSer:    req.DebenSer,
		Diferencia:  models.Diferencia(req.Monto, req.DebenSer),
		Comentarios: req.Comentarios,
	}

	if err := database.DB.Create(&balance).Error; err != nil {
		InternalError(c, err, "Error al crear el balance")
		return
	}

	Created(c, "Balance creado exitosamente", h.respuesta(balance))
}

// Update actualiza parcialmente un balance.
// Si cambia monto o deben_ser, la diferencia se recalcula con los
// valores resultantes de la mezcla.
// @Summary Actualizar balance
// @Tags balance
// @Accept json
// @Produce json
// @Param id path int true "ID del balance"
// @Param request body UpdateBalanceRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Balance} "Balance actualizado"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Failure 404 {object} Response "Balance no encontrado"
// @Router /api/balance/{id} [put]
func (h *BalanceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var balance models.Balance
	if err := database.DB.First(&balance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Balance con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el balance")
		return
	}

	var req UpdateBalanceRequest
	if !bindJSON(c, &req) {
		return
	}

	updates := make(map[string]interface{})
	if req.Tipo != nil {
		updates["tipo"] = models.TipoBalanceCorto(*req.Tipo)
	}
	if req.Concepto != nil {
		updates["concepto"] = *req.Concepto
	}
	if req.Monto != nil {
		updates["monto"] = *req.Monto
	}
	if req.DebenSer != nil {
		updates["deben_ser"] = *req.DebenSer
	}
	if req.Comentarios != nil {
		updates["comentarios"] = *req.Comentarios
	}

	// Recalcular la diferencia con los valores posteriores a la mezcla
	if req.Monto != nil || req.DebenSer != nil {
		monto := balance.Monto
		debenSer := balance.DebenSer
		if req.Monto != nil {
			monto = *req.Monto
		}
		if req.DebenSer != nil {
			debenSer = *req.DebenSer
		}
		updates["diferencia"] = models.Diferencia(monto, debenSer)
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&balance).Updates(updates).Error; err != nil {
			InternalError(c, err, "Error al actualizar el balance")
			return
		}
		database.DB.First(&balance, balance.ID)
	}

	SuccessWithMessage(c, "Balance actualizado exitosamente", h.respuesta(balance))
}

// Delete elimina un balance
// @Summary Eliminar balance
// @Tags balance
// @Produce json
// @Param id path int true "ID del balance"
// @Success 200 {object} Response "Balance eliminado"
// @Failure 404 {object} Response "Balance no encontrado"
// @Router /api/balance/{id} [delete]
func (h *BalanceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var balance models.Balance
	if err := database.DB.First(&balance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Balance con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el balance")
		return
	}

	if err := database.DB.Delete(&balance).Error; err != nil {
		InternalError(c, err, "Error al eliminar el balance")
		return
	}

	SuccessWithMessage(c, "Balance eliminado exitosamente", nil)
}

package api

import (
	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler agrega los totales del dashboard
type DashboardHandler struct{}

// NewDashboardHandler crea el handler del dashboard
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// TotalPorTipo suma de montos agrupada por tipo de gasto
type TotalPorTipo struct {
	Tipo  string  `json:"tipo" gorm:"column:tipo_gasto"`
	Total float64 `json:"total"`
}

// TotalPorCategoria suma de montos agrupada por categoría
type TotalPorCategoria struct {
	Categoria string  `json:"categoria"`
	Total     float64 `json:"total"`
}

// TotalPorMes suma de montos agrupada por mes
type TotalPorMes struct {
	Mes   string  `json:"mes"`
	Total float64 `json:"total"`
}

// DashboardResponse datos agregados de gastos
type DashboardResponse struct {
	TotalGastos        float64             `json:"total_gastos"`
	GastosPorTipo      []TotalPorTipo      `json:"gastos_por_tipo"`
	GastosPorCategoria []TotalPorCategoria `json:"gastos_por_categoria"`
	GastosPorMes       []TotalPorMes       `json:"gastos_por_mes"`
}

// Get devuelve el total de gastos y los desgloses por tipo, categoría y mes
// @Summary Datos del dashboard
// @Description Suma total de montos de gastos y tres desgloses agrupados: por tipo de gasto, por categoría y por mes. Sin filtros.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=DashboardResponse}
// @Failure 500 {object} Response "Error de consulta"
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	// Total general; COALESCE evita null con la tabla vacía
	var totalGastos float64
	if err := database.DB.Model(&models.Gasto{}).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&totalGastos).Error; err != nil {
		InternalError(c, err, "Error al consultar el dashboard")
		return
	}

	porTipo := make([]TotalPorTipo, 0)
	if err := database.DB.Model(&models.Gasto{}).
		Select("tipo_gasto, SUM(monto) as total").
		Group("tipo_gasto").
		Scan(&porTipo).Error; err != nil {
		InternalError(c, err, "Error al consultar el dashboard")
		return
	}

	porCategoria := make([]TotalPorCategoria, 0)
	if err := database.DB.Model(&models.Gasto{}).
		Select("categoria, SUM(monto) as total").
		Group("categoria").
		Scan(&porCategoria).Error; err != nil {
		InternalError(c, err, "Error al consultar el dashboard")
		return
	}

	porMes := make([]TotalPorMes, 0)
	if err := database.DB.Model(&models.Gasto{}).
		Select("mes, SUM(monto) as total").
		Group("mes").
		Scan(&porMes).Error; err != nil {
		InternalError(c, err, "Error al consultar el dashboard")
		return
	}

	Success(c, DashboardResponse{
		TotalGastos:        totalGastos,
		GastosPorTipo:      porTipo,
		GastosPorCategoria: porCategoria,
		GastosPorMes:       porMes,
	})
}

package api

import (
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler expone los catálogos fijos de la aplicación
type CatalogoHandler struct{}

// NewCatalogoHandler crea el handler de catálogos
func NewCatalogoHandler() *CatalogoHandler {
	return &CatalogoHandler{}
}

// GetAll devuelve todos los catálogos
// @Summary Obtener todos los catálogos
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response
// @Router /api/catalogos [get]
func (h *CatalogoHandler) GetAll(c *gin.Context) {
	Success(c, gin.H{
		"tipos_gasto": models.TiposGasto(),
		"categorias":  models.Categorias(),
		"formas_pago": models.FormasPago(),
		"meses":       models.Meses(),
		"tags":        models.Tags(),
		"tag_labels":  models.TagLabels(),
		"gasto_x_mes": models.GastosXMes(),
	})
}

// GetTiposGasto devuelve el catálogo de tipos de gasto
// @Summary Catálogo de tipos de gasto
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /api/catalogos/tipos-gasto [get]
func (h *CatalogoHandler) GetTiposGasto(c *gin.Context) {
	Success(c, models.TiposGasto())
}

// GetCategorias devuelve el catálogo de categorías
// @Summary Catálogo de categorías
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /api/catalogos/categorias [get]
func (h *CatalogoHandler) GetCategorias(c *gin.Context) {
	Success(c, models.Categorias())
}

// GetFormasPago devuelve el catálogo de formas de pago
// @Summary Catálogo de formas de pago
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /api/catalogos/formas-pago [get]
func (h *CatalogoHandler) GetFormasPago(c *gin.Context) {
	Success(c, models.FormasPago())
}

// GetMeses devuelve el catálogo de meses
// @Summary Catálogo de meses
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /api/catalogos/meses [get]
func (h *CatalogoHandler) GetMeses(c *gin.Context) {
	Success(c, models.Meses())
}

// GetTags devuelve el catálogo de tags con sus descripciones
// @Summary Catálogo de tags
// @Tags catalogos
// @Produce json
// @Success 200 {object} Response
// @Router /api/catalogos/tags [get]
func (h *CatalogoHandler) GetTags(c *gin.Context) {
	Success(c, gin.H{
		"tags":   models.Tags(),
		"labels": models.TagLabels(),
	})
}

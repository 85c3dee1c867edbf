package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fechaLayout formato de fecha de entrada y de los filtros
const fechaLayout = "2006-01-02"

// GastoHandler maneja los registros de gastos
type GastoHandler struct{}

// NewGastoHandler crea el handler de gastos
func NewGastoHandler() *GastoHandler {
	return &GastoHandler{}
}

// CreateGastoRequest petición para crear un gasto
type CreateGastoRequest struct {
	Concepto   string  `json:"concepto" binding:"required,min=1,max=255" example:"Renta"`
	Monto      float64 `json:"monto" binding:"required,gt=0" example:"1000.00"`
	TipoGasto  string  `json:"tipo_gasto" binding:"required" example:"Fijo"`
	FormaPago  string  `json:"forma_pago" binding:"required" example:"BBVA Oro"`
	Mes        string  `json:"mes" binding:"required" example:"Enero"`
	Anio       int     `json:"anio" binding:"required,gte=2000,lte=2100" example:"2025"`
	FechaCargo string  `json:"fecha_cargo" binding:"required" example:"2025-01-01"`
	FechaPago  string  `json:"fecha_pago" binding:"required" example:"2025-01-05"`
	Categoria  string  `json:"categoria" binding:"required" example:"E"`
	APagos     bool    `json:"a_pagos"`
	NoMens     int     `json:"no_mens" binding:"gte=0"`
	TotalMeses int     `json:"total_meses" binding:"gte=0"`
	Tag        string  `json:"tag" binding:"omitempty,max=50" example:"NA"`
	SeDivide   bool    `json:"se_divide"`
	GastoXMes  string  `json:"gasto_x_mes" binding:"omitempty,max=20" example:"ENE"`
}

// UpdateGastoRequest petición de actualización parcial de un gasto.
// Solo los campos presentes en el cuerpo se modifican.
type UpdateGastoRequest struct {
	Concepto   *string  `json:"concepto" binding:"omitempty,min=1,max=255"`
	Monto      *float64 `json:"monto" binding:"omitempty,gt=0"`
	TipoGasto  *string  `json:"tipo_gasto"`
	FormaPago  *string  `json:"forma_pago"`
	Mes        *string  `json:"mes"`
	Anio       *int     `json:"anio" binding:"omitempty,gte=2000,lte=2100"`
	FechaCargo *string  `json:"fecha_cargo"`
	FechaPago  *string  `json:"fecha_pago"`
	Categoria  *string  `json:"categoria"`
	APagos     *bool    `json:"a_pagos"`
	NoMens     *int     `json:"no_mens" binding:"omitempty,gte=0"`
	TotalMeses *int     `json:"total_meses" binding:"omitempty,gte=0"`
	Tag        *string  `json:"tag" binding:"omitempty,max=50"`
	SeDivide   *bool    `json:"se_divide"`
	GastoXMes  *string  `json:"gasto_x_mes" binding:"omitempty,max=20"`
}

// GastoFilter filtros opcionales del listado de gastos.
// Todos los filtros presentes se combinan con AND.
type GastoFilter struct {
	TipoGasto  []string
	Categoria  []string
	FormaPago  []string
	Mes        []string
	Anio       int
	FechaDesde *time.Time
	FechaHasta *time.Time
	APagos     *bool
	SeDivide   *bool
	Tag        string
}

// Apply agrega cada filtro presente como condición sobre la consulta
func (f GastoFilter) Apply(q *gorm.DB) *gorm.DB {
	if len(f.TipoGasto) > 0 {
		q = q.Where("tipo_gasto IN ?", f.TipoGasto)
	}
	if len(f.Categoria) > 0 {
		q = q.Where("categoria IN ?", f.Categoria)
	}
	if len(f.FormaPago) > 0 {
		q = q.Where("forma_pago IN ?", f.FormaPago)
	}
	if len(f.Mes) > 0 {
		q = q.Where("mes IN ?", f.Mes)
	}
	if f.Anio != 0 {
		q = q.Where("anio = ?", f.Anio)
	}
	if f.FechaDesde != nil {
		q = q.Where("fecha_cargo >= ?", *f.FechaDesde)
	}
	if f.FechaHasta != nil {
		q = q.Where("fecha_cargo <= ?", *f.FechaHasta)
	}
	if f.APagos != nil {
		q = q.Where("a_pagos = ?", *f.APagos)
	}
	if f.SeDivide != nil {
		q = q.Where("se_divide = ?", *f.SeDivide)
	}
	if f.Tag != "" {
		q = q.Where("tag = ?", f.Tag)
	}
	return q
}

// queryList lee un parámetro multivalor; admite repetir el parámetro
// y también valores separados por comas
func queryList(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseGastoFilter(c *gin.Context) (GastoFilter, error) {
	f := GastoFilter{
		TipoGasto: queryList(c, "tipo_gasto"),
		Categoria: queryList(c, "categoria"),
		FormaPago: queryList(c, "forma_pago"),
		Mes:       queryList(c, "mes"),
		Tag:       strings.TrimSpace(c.Query("tag")),
	}

	if v := c.Query("anio"); v != "" {
		anio, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("anio inválido: %s", v)
		}
		f.Anio = anio
	}
	if v := c.Query("fecha_desde"); v != "" {
		t, err := time.ParseInLocation(fechaLayout, v, time.Local)
		if err != nil {
			return f, errors.New("fecha_desde inválida, formato esperado: 2006-01-02")
		}
		f.FechaDesde = &t
	}
	if v := c.Query("fecha_hasta"); v != "" {
		t, err := time.ParseInLocation(fechaLayout, v, time.Local)
		if err != nil {
			return f, errors.New("fecha_hasta inválida, formato esperado: 2006-01-02")
		}
		f.FechaHasta = &t
	}
	if v := c.Query("a_pagos"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("a_pagos inválido: %s", v)
		}
		f.APagos = &b
	}
	if v := c.Query("se_divide"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("se_divide inválido: %s", v)
		}
		f.SeDivide = &b
	}

	return f, nil
}

// parsePagination lee page y limit con los valores por defecto del API
func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// validarCatalogosGasto revisa la pertenencia a catálogo de los campos dados.
// Los valores vacíos no se revisan (campo ausente en actualizaciones parciales).
func validarCatalogosGasto(tipoGasto, categoria, formaPago, mes, tag, gastoXMes string) []FieldError {
	var errs []FieldError
	if tipoGasto != "" && !models.EsTipoGastoValido(tipoGasto) {
		errs = append(errs, catalogError("tipo_gasto", models.TiposGasto()))
	}
	if categoria != "" && !models.EsCategoriaValida(categoria) {
		errs = append(errs, catalogError("categoria", models.Categorias()))
	}
	if formaPago != "" && !models.EsFormaPagoValida(formaPago) {
		errs = append(errs, catalogError("forma_pago", models.FormasPago()))
	}
	if mes != "" && !models.EsMesValido(mes) {
		errs = append(errs, catalogError("mes", models.Meses()))
	}
	if tag != "" && !models.EsTagValido(tag) {
		errs = append(errs, catalogError("tag", models.Tags()))
	}
	if gastoXMes != "" && !models.EsGastoXMesValido(gastoXMes) {
		errs = append(errs, catalogError("gasto_x_mes", models.GastosXMes()))
	}
	return errs
}

// List lista gastos con filtros y paginación
// @Summary Listar gastos
// @Description Lista gastos con filtros opcionales combinados con AND y paginación. Orden fijo: fecha_cargo descendente.
// @Tags gastos
// @Produce json
// @Param tipo_gasto query []string false "Tipos de gasto (repetible o separado por comas)"
// @Param categoria query []string false "Categorías (E/I)"
// @Param forma_pago query []string false "Formas de pago"
// @Param mes query []string false "Meses"
// @Param anio query int false "Año exacto"
// @Param fecha_desde query string false "Fecha de cargo mínima (2006-01-02)"
// @Param fecha_hasta query string false "Fecha de cargo máxima (2006-01-02)"
// @Param a_pagos query bool false "Solo gastos a pagos"
// @Param se_divide query bool false "Solo gastos que se dividen"
// @Param tag query string false "Tag exacto"
// @Param page query int false "Página (desde 1)" default(1)
// @Param limit query int false "Tamaño de página (1-100)" default(20)
// @Success 200 {object} Response{data=[]models.Gasto} "Listado con metadatos de paginación"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Router /api/gastos [get]
func (h *GastoHandler) List(c *gin.Context) {
	filter, err := parseGastoFilter(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	page, limit := parsePagination(c)

	query := filter.Apply(database.DB.Model(&models.Gasto{}))

	// Total de coincidencias antes de paginar; de aquí sale pages
	var total int64
	if err := query.Count(&total).Error; err != nil {
		InternalError(c, err, "Error al consultar los gastos")
		return
	}

	gastos := make([]models.Gasto, 0)
	offset := (page - 1) * limit
	if err := query.Order("fecha_cargo DESC").Offset(offset).Limit(limit).Find(&gastos).Error; err != nil {
		InternalError(c, err, "Error al consultar los gastos")
		return
	}

	SuccessPage(c, gastos, NewPagination(page, limit, total))
}

// ListMsiMci lista los gastos a meses (MSI y MCI)
// @Summary Listar gastos MSI/MCI
// @Description Lista todos los gastos cuyo tipo es MSI o MCI, sin paginación, ordenados por fecha_cargo descendente
// @Tags gastos
// @Produce json
// @Success 200 {object} Response{data=[]models.Gasto}
// @Router /api/gastos/msi-mci [get]
func (h *GastoHandler) ListMsiMci(c *gin.Context) {
	gastos := make([]models.Gasto, 0)
	err := database.DB.
		Where("tipo_gasto IN ?", []string{models.TipoGastoMSI, models.TipoGastoMCI}).
		Order("fecha_cargo DESC").
		Find(&gastos).Error
	if err != nil {
		InternalError(c, err, "Error al consultar los gastos")
		return
	}
	Success(c, gastos)
}

// Get obtiene un gasto por ID
// @Summary Obtener gasto
// @Tags gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response{data=models.Gasto}
// @Failure 404 {object} Response "Gasto no encontrado"
// @Router /api/gastos/{id} [get]
func (h *GastoHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var gasto models.Gasto
	if err := database.DB.First(&gasto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Gasto con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el gasto")
		return
	}

	Success(c, gasto)
}

// Create crea un gasto
// @Summary Crear gasto
// @Tags gastos
// @Accept json
// @Produce json
// @Param request body CreateGastoRequest true "Datos del gasto"
// @Success 201 {object} Response{data=models.Gasto} "Gasto creado"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Router /api/gastos [post]
func (h *GastoHandler) Create(c *gin.Context) {
	var req CreateGastoRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Tag == "" {
		req.Tag = models.TagNoAplica
	}
	if req.GastoXMes == "" {
		req.GastoXMes = "NA"
	}
	if errs := validarCatalogosGasto(req.TipoGasto, req.Categoria, req.FormaPago, req.Mes, req.Tag, req.GastoXMes); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	fechaCargo, err := time.ParseInLocation(fechaLayout, req.FechaCargo, time.Local)
	if err != nil {
		BadRequest(c, "fecha_cargo inválida, formato esperado: 2006-01-02")
		return
	}
	fechaPago, err := time.ParseInLocation(fechaLayout, req.FechaPago, time.Local)
	if err != nil {
		BadRequest(c, "fecha_pago inválida, formato esperado: 2006-01-02")
		return
	}

	gasto := models.Gasto{
		Concepto:   req.Concepto,
		Monto:      req.Monto,
		TipoGasto:  req.TipoGasto,
		FormaPago:  req.FormaPago,
		Mes:        req.Mes,
		Anio:       req.Anio,
		FechaCargo: fechaCargo,
		FechaPago:  fechaPago,
		Categoria:  req.Categoria,
		APagos:     req.APagos,
		NoMens:     req.NoMens,
		TotalMeses: req.TotalMeses,
		Tag:        req.Tag,
		SeDivide:   req.SeDivide,
		GastoXMes:  req.GastoXMes,
	}

	if err := database.DB.Create(&gasto).Error; err != nil {
		InternalError(c, err, "Error al crear el gasto")
		return
	}

	Created(c, "Gasto creado exitosamente", gasto)
}

// Update actualiza parcialmente un gasto
// @Summary Actualizar gasto
// @Description Actualiza solo los campos presentes en el cuerpo
// @Tags gastos
// @Accept json
// @Produce json
// @Param id path int true "ID del gasto"
// @Param request body UpdateGastoRequest true "Campos a actualizar"
// @Success 200 {object} Response{data=models.Gasto} "Gasto actualizado"
// @Failure 400 {object} Response "Datos de entrada inválidos"
// @Failure 404 {object} Response "Gasto no encontrado"
// @Router /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var gasto models.Gasto
	if err := database.DB.First(&gasto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Gasto con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el gasto")
		return
	}

	var req UpdateGastoRequest
	if !bindJSON(c, &req) {
		return
	}

	var errs []FieldError
	updates := make(map[string]interface{})
	if req.Concepto != nil {
		updates["concepto"] = *req.Concepto
	}
	if req.Monto != nil {
		updates["monto"] = *req.Monto
	}
	if req.TipoGasto != nil {
		if !models.EsTipoGastoValido(*req.TipoGasto) {
			errs = append(errs, catalogError("tipo_gasto", models.TiposGasto()))
		}
		updates["tipo_gasto"] = *req.TipoGasto
	}
	if req.FormaPago != nil {
		if !models.EsFormaPagoValida(*req.FormaPago) {
			errs = append(errs, catalogError("forma_pago", models.FormasPago()))
		}
		updates["forma_pago"] = *req.FormaPago
	}
	if req.Mes != nil {
		if !models.EsMesValido(*req.Mes) {
			errs = append(errs, catalogError("mes", models.Meses()))
		}
		updates["mes"] = *req.Mes
	}
	if req.Anio != nil {
		updates["anio"] = *req.Anio
	}
	if req.FechaCargo != nil {
		t, err := time.ParseInLocation(fechaLayout, *req.FechaCargo, time.Local)
		if err != nil {
			BadRequest(c, "fecha_cargo inválida, formato esperado: 2006-01-02")
			return
		}
		updates["fecha_cargo"] = t
	}
	if req.FechaPago != nil {
		t, err := time.ParseInLocation(fechaLayout, *req.FechaPago, time.Local)
		if err != nil {
			BadRequest(c, "fecha_pago inválida, formato esperado: 2006-01-02")
			return
		}
		updates["fecha_pago"] = t
	}
	if req.Categoria != nil {
		if !models.EsCategoriaValida(*req.Categoria) {
			errs = append(errs, catalogError("categoria", models.Categorias()))
		}
		updates["categoria"] = *req.Categoria
	}
	if req.APagos != nil {
		updates["a_pagos"] = *req.APagos
	}
	if req.NoMens != nil {
		updates["no_mens"] = *req.NoMens
	}
	if req.TotalMeses != nil {
		updates["total_meses"] = *req.TotalMeses
	}
	if req.Tag != nil {
		if !models.EsTagValido(*req.Tag) {
			errs = append(errs, catalogError("tag", models.Tags()))
		}
		updates["tag"] = *req.Tag
	}
	if req.SeDivide != nil {
		updates["se_divide"] = *req.SeDivide
	}
	if req.GastoXMes != nil {
		if !models.EsGastoXMesValido(*req.GastoXMes) {
			errs = append(errs, catalogError("gasto_x_mes", models.GastosXMes()))
		}
		updates["gasto_x_mes"] = *req.GastoXMes
	}
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&gasto).Updates(updates).Error; err != nil {
			InternalError(c, err, "Error al actualizar el gasto")
			return
		}
		database.DB.First(&gasto, gasto.ID)
	}

	SuccessWithMessage(c, "Gasto actualizado exitosamente", gasto)
}

// Delete elimina un gasto
// @Summary Eliminar gasto
// @Tags gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 200 {object} Response "Gasto eliminado"
// @Failure 404 {object} Response "Gasto no encontrado"
// @Router /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var gasto models.Gasto
	if err := database.DB.First(&gasto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, fmt.Sprintf("Gasto con ID %d no encontrado", id))
			return
		}
		InternalError(c, err, "Error al consultar el gasto")
		return
	}

	if err := database.DB.Delete(&gasto).Error; err != nil {
		InternalError(c, err, "Error al eliminar el gasto")
		return
	}

	SuccessWithMessage(c, "Gasto eliminado exitosamente", nil)
}

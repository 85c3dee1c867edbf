package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response estructura común de respuesta
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Detail  string       `json:"detail,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describe un error de validación por campo
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Pagination metadatos de paginación de un listado
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// TotalPages calcula el número de páginas con división entera hacia arriba.
// total=0 produce 0 páginas.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewPagination arma los metadatos de paginación de un listado
func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: TotalPages(total, limit),
	}
}

// Success respuesta exitosa
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage respuesta exitosa con mensaje
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created respuesta 201 para recursos recién creados
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessPage respuesta exitosa de un listado paginado
func SuccessPage(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

// Fail respuesta de error genérica
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest error 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// NotFound error 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError error 500. El detalle se expone solo fuera de modo release.
func InternalError(c *gin.Context, err error, fallback string) {
	resp := Response{
		Success: false,
		Error:   fallback,
	}
	if detail := SafeErrorMessage(err, fallback); detail != fallback {
		resp.Detail = detail
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// ValidationFailed error 400 con la lista estructurada de errores por campo
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Datos de entrada inválidos",
		Errors:  errs,
	})
}

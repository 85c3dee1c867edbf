package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Reporta los errores de validación con el nombre JSON del campo
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON deserializa y valida el cuerpo de la petición.
// Si falla responde el error estructurado y devuelve false.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			ValidationFailed(c, fieldErrors(verrs))
			return false
		}
		BadRequest(c, SafeErrorMessage(err, "Cuerpo de la petición inválido"))
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: fieldMessage(e),
			Type:    e.Tag(),
		})
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", e.Field())
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor a %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("El campo %s no puede tener más de %s caracteres", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", e.Field(), strings.Join(strings.Fields(e.Param()), ", "))
	}
	return fmt.Sprintf("El campo %s no es válido", e.Field())
}

// catalogError arma el error de pertenencia a catálogo de un campo
func catalogError(field string, valores []string) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("El campo %s debe ser uno de: %s", field, strings.Join(valores, ", ")),
		Type:    "catalogo",
	}
}

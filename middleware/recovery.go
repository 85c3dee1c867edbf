package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/JFRG28/money-monitor-vWeb/config"

	"github.com/gin-gonic/gin"
)

// Recovery captura cualquier panic no manejado y responde el sobre de error
// genérico. El detalle solo se incluye fuera de modo release.
func Recovery(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recuperado en %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				resp := gin.H{
					"success": false,
					"error":   "Error interno del servidor",
				}
				if !cfg.IsRelease() {
					resp["detail"] = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}

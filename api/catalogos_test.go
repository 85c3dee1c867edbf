package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogoRouter() *gin.Engine {
	r := gin.New()
	h := NewCatalogoHandler()
	r.GET("/catalogos", h.GetAll)
	r.GET("/catalogos/tipos-gasto", h.GetTiposGasto)
	r.GET("/catalogos/meses", h.GetMeses)
	r.GET("/catalogos/tags", h.GetTags)
	return r
}

func TestCatalogoHandler_GetAll(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/catalogos", nil)
	newCatalogoRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	for _, key := range []string{"tipos_gasto", "categorias", "formas_pago", "meses", "tags", "tag_labels", "gasto_x_mes"} {
		assert.Contains(t, data, key)
	}
	assert.Len(t, data["meses"], 12)
	assert.ElementsMatch(t, []interface{}{"E", "I"}, data["categorias"])
}

func TestCatalogoHandler_GetTiposGasto(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/catalogos/tipos-gasto", nil)
	newCatalogoRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []interface{}{"Fijo", "Variable", "MSI", "MCI"}, resp["data"])
}

func TestCatalogoHandler_GetTags(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/catalogos/tags", nil)
	newCatalogoRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp["data"].(map[string]interface{})
	labels := data["labels"].(map[string]interface{})
	// Cada tag del catálogo tiene etiqueta
	for _, tag := range data["tags"].([]interface{}) {
		assert.Contains(t, labels, tag.(string))
	}
	assert.Equal(t, "Me deben", labels["MD"])
}

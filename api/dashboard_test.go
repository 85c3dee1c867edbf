package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardRouter() *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", NewDashboardHandler().Get)
	return r
}

func TestDashboardHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(monto\\), 0\\) FROM `gastos`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4550.75))

	mock.ExpectQuery("SELECT tipo_gasto, SUM\\(monto\\) as total FROM `gastos` GROUP BY `tipo_gasto`").
		WillReturnRows(sqlmock.NewRows([]string{"tipo_gasto", "total"}).
			AddRow("Fijo", 3000.25).
			AddRow("Variable", 1550.50))

	mock.ExpectQuery("SELECT categoria, SUM\\(monto\\) as total FROM `gastos` GROUP BY `categoria`").
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "total"}).
			AddRow("E", 4000.75).
			AddRow("I", 550.00))

	mock.ExpectQuery("SELECT mes, SUM\\(monto\\) as total FROM `gastos` GROUP BY `mes`").
		WillReturnRows(sqlmock.NewRows([]string{"mes", "total"}).
			AddRow("Enero", 2000.00).
			AddRow("Febrero", 2550.75))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	newDashboardRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 4550.75, data["total_gastos"])

	porTipo := data["gastos_por_tipo"].([]interface{})
	require.Len(t, porTipo, 2)
	assert.Equal(t, "Fijo", porTipo[0].(map[string]interface{})["tipo"])
	assert.Equal(t, 3000.25, porTipo[0].(map[string]interface{})["total"])

	porCategoria := data["gastos_por_categoria"].([]interface{})
	require.Len(t, porCategoria, 2)
	assert.Equal(t, "E", porCategoria[0].(map[string]interface{})["categoria"])

	porMes := data["gastos_por_mes"].([]interface{})
	require.Len(t, porMes, 2)
	assert.Equal(t, "Febrero", porMes[1].(map[string]interface{})["mes"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_Get_TablaVacia(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(monto\\), 0\\) FROM `gastos`").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery("SELECT tipo_gasto, SUM\\(monto\\) as total FROM `gastos` GROUP BY `tipo_gasto`").
		WillReturnRows(sqlmock.NewRows([]string{"tipo_gasto", "total"}))
	mock.ExpectQuery("SELECT categoria, SUM\\(monto\\) as total FROM `gastos` GROUP BY `categoria`").
		WillReturnRows(sqlmock.NewRows([]string{"categoria", "total"}))
	mock.ExpectQuery("SELECT mes, SUM\\(monto\\) as total FROM `gastos` GROUP BY `mes`").
		WillReturnRows(sqlmock.NewRows([]string{"mes", "total"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	newDashboardRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// Desgloses vacíos serializan como [] y el total como 0
	assert.Contains(t, w.Body.String(), `"total_gastos":0`)
	assert.Contains(t, w.Body.String(), `"gastos_por_tipo":[]`)
	assert.Contains(t, w.Body.String(), `"gastos_por_categoria":[]`)
	assert.Contains(t, w.Body.String(), `"gastos_por_mes":[]`)
	require.NoError(t, mock.ExpectationsWereMet())
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deudaColumns = []string{"id", "tipo", "item", "monto", "fecha", "created_at", "updated_at"}

func newDeudaRouter() *gin.Engine {
	r := gin.New()
	h := NewDeudaHandler()
	r.GET("/deudas", h.List)
	r.POST("/deudas", h.Create)
	r.GET("/deudas/:id", h.Get)
	r.PUT("/deudas/:id", h.Update)
	r.DELETE("/deudas/:id", h.Delete)
	return r
}

func TestDeudaHandler_List_OrdenPorFecha(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(deudaColumns).
		AddRow(2, "T", "Tarjeta BBVA", 1250.50, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), time.Now(), time.Now()).
		AddRow(1, "O", "Préstamo", 500.0, time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local), time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM `deudas` ORDER BY fecha DESC").WillReturnRows(rows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/deudas", nil)
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Len(t, resp["data"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeudaHandler_List_Vacia(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `deudas` ORDER BY fecha DESC").
		WillReturnRows(sqlmock.NewRows(deudaColumns))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/deudas", nil)
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// data debe ser [] y no null
	assert.Contains(t, w.Body.String(), `"data":[]`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeudaHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `deudas`").
		WithArgs("T", "Tarjeta BBVA", 1250.50, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := `{"tipo":"T","item":"Tarjeta BBVA","monto":1250.50,"fecha":"2025-01-15"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/deudas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Deuda creada exitosamente", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeudaHandler_Create_FechaInvalida(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	body := `{"tipo":"T","item":"Tarjeta BBVA","monto":1250.50,"fecha":"15/01/2025"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/deudas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestDeudaHandler_Update_NoEncontrada(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `deudas`").WithArgs(77).
		WillReturnRows(sqlmock.NewRows(deudaColumns))

	body := `{"monto":99.99}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/deudas/77", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "no encontrada")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeudaHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(deudaColumns).
		AddRow(1, "T", "Tarjeta BBVA", 1250.50, time.Now(), time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM `deudas`").WithArgs(1).WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `deudas`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/deudas/1", nil)
	newDeudaRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Deuda eliminada exitosamente", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

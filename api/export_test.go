package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter() *gin.Engine {
	r := gin.New()
	r.GET("/export/excel", NewExportHandler().ExportExcel)
	return r
}

func TestExportHandler_ExportExcel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(gastoColumns)
	gastoRow(rows, 1, "Renta", 1000, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))
	mock.ExpectQuery("SELECT .* FROM `gastos` ORDER BY fecha_cargo DESC").
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/excel", nil)
	newExportRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=gastos_")
	// Un .xlsx es un zip: empieza con la firma PK
	body := w.Body.Bytes()
	require.Greater(t, len(body), 4)
	assert.Equal(t, []byte{'P', 'K'}, body[:2])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel_FiltroInvalido(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/excel?fecha_desde=01-01-2025", nil)
	newExportRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

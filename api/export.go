package api

import (
	"fmt"
	"time"

	"github.com/JFRG28/money-monitor-vWeb/database"
	"github.com/JFRG28/money-monitor-vWeb/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exporta gastos a Excel
type ExportHandler struct{}

// NewExportHandler crea el handler de exportación
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportExcel exporta los gastos como archivo .xlsx
// @Summary Exportar gastos a Excel
// @Description Genera un archivo .xlsx con los gastos; acepta los mismos filtros que el listado
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tipo_gasto query []string false "Tipos de gasto"
// @Param categoria query []string false "Categorías"
// @Param mes query []string false "Meses"
// @Param anio query int false "Año exacto"
// @Param fecha_desde query string false "Fecha de cargo mínima"
// @Param fecha_hasta query string false "Fecha de cargo máxima"
// @Success 200 {file} file "Archivo Excel"
// @Failure 400 {object} Response "Parámetros inválidos"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	filter, err := parseGastoFilter(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var gastos []models.Gasto
	if err := filter.Apply(database.DB.Model(&models.Gasto{})).
		Order("fecha_cargo DESC").
		Find(&gastos).Error; err != nil {
		InternalError(c, err, "Error al consultar los gastos")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Gastos"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 35)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 15)
	f.SetColWidth(sheetName, "F", "G", 14)
	f.SetColWidth(sheetName, "H", "J", 12)

	headers := []string{"ID", "Concepto", "Monto", "Tipo", "Forma de pago", "Mes", "Año", "Fecha cargo", "Fecha pago", "Categoría"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalMonto float64
	for i, gasto := range gastos {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), gasto.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), gasto.Concepto)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), gasto.Monto)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), gasto.TipoGasto)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), gasto.FormaPago)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), gasto.Mes)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), gasto.Anio)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), gasto.FechaCargo.Format(fechaLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), gasto.FechaPago.Format(fechaLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), gasto.Categoria)
		totalMonto += gasto.Monto
	}

	// Fila de totales
	summaryRow := len(gastos) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalMonto)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d registros", len(gastos)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("J%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("J%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("gastos_%s.xlsx", time.Now().Format(fechaLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, err, "Error al generar el archivo Excel")
		return
	}
}

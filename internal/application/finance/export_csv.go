package finance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/tu-usuario/fletes-pro/internal/application/dto"
)

// csvHeader columnas del export financiero.
var csvHeader = []string{"Pedido", "Cliente", "Estado", "Ingreso", "Gasto", "Ganancia", "Margen"}

// ExportCSV genera el reporte financiero como CSV (una fila por pedido más
// una fila final de totales). Los montos van con dos decimales y el margen
// con cuatro, como fracción.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, req dto.FinanceReportRequest) ([]byte, error) {
	report, err := uc.Report(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, row := range report.Orders {
		record := []string{
			row.OrderID,
			row.Client,
			row.Status,
			row.Income.StringFixed(2),
			row.Expense.StringFixed(2),
			row.Profit.StringFixed(2),
			row.Margin.StringFixed(4),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	totals := []string{
		"TOTAL",
		"",
		"",
		report.Summary.TotalIncome.StringFixed(2),
		report.Summary.TotalExpense.StringFixed(2),
		report.Summary.TotalProfit.StringFixed(2),
		report.Summary.Margin.StringFixed(4),
	}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("escribir totales CSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package reports renders the admin per-employee time/pay table as
// downloadable files.
package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"staff-attendance/internal/models"
	"staff-attendance/internal/services"
)

// windowColumns picks the hours/pay pair for the requested window.
func windowColumns(row models.EmployeeStats, w services.Window) (float64, float64) {
	switch w {
	case services.WindowDay:
		return row.DailyHours, row.DailyPay
	case services.WindowMonth:
		return row.MonthlyHours, row.MonthlyPay
	default:
		return row.YearlyHours, row.YearlyPay
	}
}

// WriteExcel writes the payroll summary for one window as an .xlsx
// workbook.
func WriteExcel(w io.Writer, rows []models.EmployeeStats, window services.Window, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"Employee", "Position", "Hourly Rate", "Hours", "Pay"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	f.SetCellValue(sheet, "G1", fmt.Sprintf("Window: %s", window))
	f.SetCellValue(sheet, "G2", fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04:05")))

	for i, row := range rows {
		hours, pay := windowColumns(row, window)
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{row.Employee.Name, row.Employee.Position, row.Employee.HourlyRate, hours, pay}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

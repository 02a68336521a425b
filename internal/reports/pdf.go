package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"staff-attendance/internal/models"
	"staff-attendance/internal/services"
)

// WritePDF writes the payroll summary for one window as a PDF document.
func WritePDF(w io.Writer, rows []models.EmployeeStats, window services.Window, generatedAt time.Time) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Payroll Summary", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				subtitle := fmt.Sprintf("Window: %s — generated %s", window, generatedAt.Format("2006-01-02 15:04:05"))
				m.Text(subtitle, props.Text{
					Top:   3,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	headers := []string{"Employee", "Position", "Hours", "Pay"}
	table := [][]string{}
	var totalPay float64
	for _, row := range rows {
		hours, pay := windowColumns(row, window)
		totalPay += pay
		table = append(table, []string{
			row.Employee.Name,
			row.Employee.Position,
			fmt.Sprintf("%.1f", hours),
			fmt.Sprintf("%.2f", pay),
		})
	}

	m.TableList(headers, table, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{4, 4, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{4, 4, 2, 2},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(20, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total pay: %.2f", totalPay), props.Text{
				Top:   10,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// Package report renders floor aggregates as downloadable documents.
package report

import (
	"bytes"
	"fmt"

	"tjbuilding/internal/telemetry"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Supported export formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Build renders agg in the requested format. title names the device kind.
func Build(format, title string, agg telemetry.FloorAggregate) ([]byte, error) {
	switch format {
	case FormatXLSX:
		return BuildFloorXLSX(title, agg)
	case FormatPDF:
		return BuildFloorPDF(title, agg)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// BuildFloorPDF renders a one-page-per-floor summary with a room table.
func BuildFloorPDF(title string, agg telemetry.FloorAggregate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Floor %s - %s report", agg.Floor, title))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Devices: %d (on: %d, faulty: %d)", agg.TotalDevices, agg.OnDevices, agg.FaultyDevices),
		fmt.Sprintf("Area (m2): %.0f", agg.Area),
		fmt.Sprintf("Energy (kWh): %.2f", agg.EnergyKWh),
		fmt.Sprintf("Cost (CNY): %.2f", agg.CostCNY),
		fmt.Sprintf("Efficiency (kWh/m2): %.2f", agg.Efficiency),
		fmt.Sprintf("Average on-rate (%%): %.2f", agg.AvgOnRate),
		fmt.Sprintf("Average runtime (h): %.2f", agg.AvgRuntimeHours),
		fmt.Sprintf("Average severity: %.1f", agg.AvgSeverity),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	widths := []float64{22, 18, 18, 20, 26, 24, 22, 24}
	headers := []string{"Room", "Devices", "On", "Faulty", "Energy kWh", "Cost CNY", "Area m2", "kWh/m2"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, r := range agg.Rooms {
		cells := []string{
			r.Room,
			fmt.Sprintf("%d", r.TotalDevices),
			fmt.Sprintf("%d", r.OnDevices),
			fmt.Sprintf("%d", r.FaultyDevices),
			fmt.Sprintf("%.2f", r.EnergyKWh),
			fmt.Sprintf("%.2f", r.CostCNY),
			fmt.Sprintf("%.0f", r.Area),
			fmt.Sprintf("%.2f", r.Efficiency),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildFloorXLSX writes summary, rooms and devices sheets.
func BuildFloorXLSX(title string, agg telemetry.FloorAggregate) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summary, rooms, devices := "summary", "rooms", "devices"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(rooms); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", rooms, err)
	}
	if _, err := f.NewSheet(devices); err != nil {
		return nil, fmt.Errorf("add sheet %s: %w", devices, err)
	}

	summaryRows := [][]any{
		{fmt.Sprintf("Floor %s - %s report", agg.Floor, title)},
		{},
		{"Devices", agg.TotalDevices},
		{"On", agg.OnDevices},
		{"Faulty", agg.FaultyDevices},
		{"Area (m2)", agg.Area},
		{"Energy (kWh)", agg.EnergyKWh},
		{"Cost (CNY)", agg.CostCNY},
		{"Efficiency (kWh/m2)", agg.Efficiency},
		{"Average on-rate (%)", agg.AvgOnRate},
		{"Average cost per room (CNY)", agg.AvgCostCNY},
		{"Average runtime (h)", agg.AvgRuntimeHours},
		{"Average severity", agg.AvgSeverity},
	}
	if err := writeRows(f, summary, summaryRows); err != nil {
		return nil, err
	}

	roomRows := [][]any{{"Room", "Devices", "On", "On-rate (%)", "Avg runtime (h)", "Area (m2)", "Energy (kWh)", "Cost (CNY)", "kWh/m2", "Faulty", "Avg severity"}}
	deviceRows := [][]any{{"Room", "Device", "Name", "Power (W)", "On", "Fault", "Severity", "Runtime (h)", "Energy (kWh)", "Cost (CNY)", "Maintenance"}}
	for _, r := range agg.Rooms {
		roomRows = append(roomRows, []any{
			r.Room, r.TotalDevices, r.OnDevices, r.OnRate, r.AvgRuntimeHours, r.Area,
			r.EnergyKWh, r.CostCNY, r.Efficiency, r.FaultyDevices, r.AvgSeverity,
		})
		for _, d := range r.Devices {
			deviceRows = append(deviceRows, []any{
				r.Room, d.ID, d.Name, d.PowerW, d.On, d.Fault.Category.Label(), d.Fault.Severity,
				telemetry.Round2(d.Runtime.DurationHours), telemetry.Round2(d.Energy.KWh), d.Energy.CostCNY, string(d.Advisory.Level),
			})
		}
	}
	if err := writeRows(f, rooms, roomRows); err != nil {
		return nil, err
	}
	if err := writeRows(f, devices, deviceRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/Sriram31Mech/EventHubPro-1/internal/event"
)

// ===========================
// 🎯 Event Report Exporter
// ===========================

var reportHeader = []string{"Title", "Type", "Location", "Venue", "Start Date", "End Date", "Start Time", "End Time", "Cost", "Created"}

// Export renders an admin's events in the requested format and returns the
// file bytes together with the name and content type to serve them under.
func Export(events []event.Event, format string) ([]byte, string, string, error) {
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case "xlsx":
		data, err := exportXLSX(events)
		return data, "events-" + stamp + ".xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	case "pdf":
		data, err := exportPDF(events)
		return data, "events-" + stamp + ".pdf", "application/pdf", err
	case "csv":
		data, err := exportCSV(events)
		return data, "events-" + stamp + ".csv", "text/csv", err
	default:
		return nil, "", "", fmt.Errorf("unsupported format %q", format)
	}
}

func rowValues(ev event.Event) []string {
	return []string{
		ev.Title,
		ev.EventType,
		ev.Location,
		ev.Venue,
		ev.StartDate.Format("2006-01-02"),
		ev.EndDate.Format("2006-01-02"),
		ev.StartTime,
		ev.EndTime,
		ev.Cost,
		ev.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func exportXLSX(events []event.Event) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Events"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, ev := range events {
		for c, val := range rowValues(ev) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportPDF(events []event.Event) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Event Report - "+strconv.Itoa(len(events))+" events")
	pdf.Ln(12)

	widths := []float64{45, 22, 32, 38, 22, 22, 20, 20, 18, 28}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range reportHeader {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, ev := range events {
		for i, val := range rowValues(ev) {
			if len(val) > 40 {
				val = val[:37] + "..."
			}
			pdf.CellFormat(widths[i], 7, val, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportCSV(events []event.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, ev := range events {
		if err := w.Write(rowValues(ev)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Sriram31Mech/EventHubPro-1/internal/event"
)

func sampleEvents() []event.Event {
	return []event.Event{{
		Title:     "Go Conference 2026",
		EventType: "conference",
		Location:  "Berlin",
		Venue:     "City Congress Center",
		StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "9:00 AM",
		EndTime:   "6:00 PM",
		Cost:      "Free",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestExportCSVRoundTrips(t *testing.T) {
	data, filename, contentType, err := Export(sampleEvents(), "csv")
	require.NoError(t, err)

	assert.Contains(t, filename, ".csv")
	assert.Equal(t, "text/csv", contentType)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Title", records[0][0])
	assert.Equal(t, "Go Conference 2026", records[1][0])
	assert.Equal(t, "2026-10-01", records[1][4])
}

func TestExportXLSXContainsRows(t *testing.T) {
	data, filename, _, err := Export(sampleEvents(), "xlsx")
	require.NoError(t, err)
	assert.Contains(t, filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Go Conference 2026", rows[1][0])
}

func TestExportPDFProducesDocument(t *testing.T) {
	data, filename, contentType, err := Export(sampleEvents(), "pdf")
	require.NoError(t, err)

	assert.Contains(t, filename, ".pdf")
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportUnknownFormatFails(t *testing.T) {
	_, _, _, err := Export(nil, "docx")
	assert.Error(t, err)
}

package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsAllSentinel(t *testing.T) {
	p := SearchParams{
		Search:    "  golang  ",
		EventType: "All",
		Location:  "ALL",
		Date:      " 2026-10-01 ",
	}.Normalize()

	assert.Equal(t, "golang", p.Search)
	assert.Empty(t, p.EventType)
	assert.Empty(t, p.Location)
	assert.Equal(t, "2026-10-01", p.Date)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, SearchParams{}.IsEmpty())
	assert.True(t, SearchParams{EventType: "all"}.Normalize().IsEmpty())
	assert.False(t, SearchParams{Location: "Berlin"}.IsEmpty())
}

func TestDayWindowHalfOpenRange(t *testing.T) {
	from, to, ok := SearchParams{Date: "2026-10-01"}.DayWindow()
	require.True(t, ok)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestDayWindowRejectsGarbage(t *testing.T) {
	_, _, ok := SearchParams{Date: "next tuesday"}.DayWindow()
	assert.False(t, ok)

	_, _, ok = SearchParams{}.DayWindow()
	assert.False(t, ok)
}

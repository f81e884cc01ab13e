package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var refNow = time.Date(2025, time.August, 10, 12, 0, 0, 0, time.UTC)

func TestParseTravelDateRelative(t *testing.T) {
	assert.Equal(t, "2025-08-10", ParseTravelDateAt("today", refNow))
	assert.Equal(t, "2025-08-11", ParseTravelDateAt("Tomorrow", refNow))
	assert.Equal(t, "2025-08-12", ParseTravelDateAt("day after tomorrow", refNow))
	assert.Equal(t, "2025-08-17", ParseTravelDateAt("sometime next week", refNow))
	assert.Equal(t, "2025-09-10", ParseTravelDateAt("next month", refNow))
}

func TestParseTravelDateExplicit(t *testing.T) {
	assert.Equal(t, "2025-12-01", ParseTravelDateAt("2025-12-01", refNow))
	assert.Equal(t, "2025-08-18", ParseTravelDateAt("18/08/2025", refNow))
	assert.Equal(t, "2025-08-18", ParseTravelDateAt("18th of August", refNow))
	assert.Equal(t, "2025-08-18", ParseTravelDateAt("18 august", refNow))
	assert.Equal(t, "2025-08-18", ParseTravelDateAt("August 18", refNow))
	assert.Equal(t, "2026-08-18", ParseTravelDateAt("18 August 2026", refNow))
}

func TestParseTravelDateRejectsGarbage(t *testing.T) {
	assert.Equal(t, "", ParseTravelDateAt("", refNow))
	assert.Equal(t, "", ParseTravelDateAt("whenever", refNow))
	// 31 February must not roll over into March.
	assert.Equal(t, "", ParseTravelDateAt("31 February", refNow))
	assert.Equal(t, "", ParseTravelDateAt("2025-13-40", refNow))
}

func TestNextDayISO(t *testing.T) {
	assert.Equal(t, "2025-09-01", NextDayISO("2025-08-31"))
	assert.Equal(t, "2026-01-01", NextDayISO("2025-12-31"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-date", NextDayISO("not-a-date"))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "Monday, 18 August 2025", FormatDisplayDate("2025-08-18"))
	assert.Equal(t, "garbage", FormatDisplayDate("garbage"))
}

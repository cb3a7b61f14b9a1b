package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/view"
)

func TestFormatDatetime_FullAndMediumDiffer(t *testing.T) {
	const input = "2035-04-01 20:30:00"

	full, err := view.FormatDatetime(input, "full")
	require.NoError(t, err)

	medium, err := view.FormatDatetime(input, "medium")
	require.NoError(t, err)

	assert.Equal(t, "Sunday April 1, 2035 at 8:30PM", full)
	assert.Equal(t, "Sun 04/01/2035 8:30PM", medium)
	assert.NotEqual(t, full, medium)
}

func TestFormatDatetime_DefaultsToMedium(t *testing.T) {
	const input = "2035-04-01 20:30:00"

	got, err := view.FormatDatetime(input, "")
	require.NoError(t, err)
	assert.Equal(t, "Sun 04/01/2035 8:30PM", got)
}

func TestFormatDatetime_Deterministic(t *testing.T) {
	const input = "2030-12-24T18:00"

	first, err := view.FormatDatetime(input, "full")
	require.NoError(t, err)
	second, err := view.FormatDatetime(input, "full")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatDatetime_ParseError(t *testing.T) {
	_, err := view.FormatDatetime("next tuesday-ish", "medium")
	assert.Error(t, err)
}

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	cases := []string{
		"2030-06-15T19:30:00Z",
		"2030-06-15 19:30:00",
		"2030-06-15T19:30",
		"2030-06-15",
	}
	for _, input := range cases {
		got, err := view.ParseTimestamp(input)
		require.NoError(t, err, input)
		assert.Equal(t, 2030, got.Year(), input)
	}
}

func TestFormatShowTime(t *testing.T) {
	ts := time.Date(2030, 6, 15, 21, 5, 0, 0, time.UTC)
	assert.Equal(t, "06/15/2030, 21:05:00", view.FormatShowTime(ts))
}

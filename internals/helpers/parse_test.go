package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", FormatClockTime(got))

	got, err = ParseClockTime(" 13:45:30 ")
	require.NoError(t, err)
	assert.Equal(t, "13:45", FormatClockTime(got))

	_, err = ParseClockTime("9am")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HH:MM")

	_, err = ParseClockTime("")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-08-26")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-26", got.Format("2006-01-02"))

	_, err = ParseDate("26/08/2025")
	require.Error(t, err)
}

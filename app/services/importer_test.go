package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsSimple(t *testing.T) {
	raw := []byte("PRN,Name,Year\nTE123,Asha Kulkarni,TE\nBE456,Rohan Patil,BE\n")

	rows, err := ParseRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "TE123", rows[0]["prn"])
	assert.Equal(t, "Asha Kulkarni", rows[0]["name"])
	assert.Equal(t, "BE", rows[1]["year"])
}

func TestParseRowsHeaderNormalization(t *testing.T) {
	raw := []byte("  PRN , Student   Name , ROLL  NO \nTE123, Asha , 42\n")

	rows, err := ParseRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0]["student name"])
	assert.Equal(t, "42", rows[0]["roll no"])
}

func TestParseRowsToleratesPreamble(t *testing.T) {
	raw := []byte("Student Export\nGenerated 2024-06-01\nPRN,Name\nTE123,Asha\n")

	rows, err := ParseRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "TE123", rows[0]["prn"])
}

func TestParseRowsHeaderBeyondWindow(t *testing.T) {
	raw := []byte("a\nb\nc\nd\ne\nPRN,Name\nTE123,Asha\n")

	_, err := ParseRows(raw)
	assert.Error(t, err)
}

func TestParseRowsStripsBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("PRN,Name\nTE123,Asha\n")...)

	rows, err := ParseRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestParseRowsEmptyFile(t *testing.T) {
	_, err := ParseRows([]byte("  \n "))
	assert.Error(t, err)
}

func TestParseRowsSkipsBlankRows(t *testing.T) {
	raw := []byte("PRN,Name\nTE123,Asha\n,\n")

	rows, err := ParseRows(raw)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRowGetFallback(t *testing.T) {
	row := Row{"student name": "Asha"}
	assert.Equal(t, "Asha", row.Get("name", "student name"))
	assert.Equal(t, "", row.Get("email"))
}

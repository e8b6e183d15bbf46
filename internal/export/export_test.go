package export

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type tour struct {
	Code        string
	Destination string
	Price       float64
}

var tourColumns = []Column[tour]{
	{Title: "Code", Value: func(t tour) string { return t.Code }},
	{Title: "Destination", Value: func(t tour) string { return t.Destination }},
	{Title: "Price", Value: func(t tour) string { return strconv.FormatFloat(t.Price, 'f', 2, 64) }},
}

func sampleTours() []tour {
	return []tour{
		{"GOA1", "Goa", 12000},
		{"GOA2", "Goa", 15000},
		{"KER1", "Kerala", 18000},
		{"X", "", 1},
	}
}

func TestBuild(t *testing.T) {
	tbl := Build("Tours", tourColumns, sampleTours())
	assert.Equal(t, []string{"Code", "Destination", "Price"}, tbl.Columns)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []string{"KER1", "Kerala", "18000.00"}, tbl.Rows[2])
}

func TestCountBy(t *testing.T) {
	got := CountBy(sampleTours(), func(t tour) string { return t.Destination })
	assert.Equal(t, []Count{{"Goa", 2}, {"Kerala", 1}, {"unknown", 1}}, got)
	assert.Empty(t, CountBy([]tour{}, func(t tour) string { return t.Code }))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Build("Tours", tourColumns, sampleTours())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tours")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Code", "Destination", "Price"}, rows[0])
	assert.Equal(t, "GOA2", rows[2][0])
}

func TestWriteXLSX_LongTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Table{Title: "A title that is far longer than thirty one characters"}))
	assert.NotZero(t, buf.Len())
}

func TestWritePDF(t *testing.T) {
	rows := sampleTours()
	for i := 0; i < 60; i++ {
		rows = append(rows, tour{Code: "BULK" + strconv.Itoa(i), Destination: "A destination name long enough to need trimming in a cell", Price: 1})
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Build("Tours", tourColumns, rows), time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDF_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Table{Title: "Nothing loaded"}, time.Now()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

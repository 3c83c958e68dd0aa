package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleLog = `2025-01-02 10:00:00 - Name: Jane Doe, Email: jane@example.com, Subject: Hello there
not a log line
2025-01-03 11:30:15 - Name: O&#39;Brien, Email: ob@example.com, Subject: Q&amp;A, part 2
`

func TestParseLog(t *testing.T) {
	records, skipped, err := ParseLog(strings.NewReader(sampleLog))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, []int{2}, skipped)

	assert.Equal(t, "Jane Doe", records[0].Name)
	assert.Equal(t, "jane@example.com", records[0].Email)
	assert.Equal(t, "O'Brien", records[1].Name)
	assert.Equal(t, "Q&A, part 2", records[1].Subject)
	assert.Equal(t, 30, records[1].Timestamp.Minute())
}

func TestWriteXLSX(t *testing.T) {
	records, _, err := ParseLog(strings.NewReader(sampleLog))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"2025-01-03 11:30:15", "O'Brien", "ob@example.com", "Q&A, part 2"}, rows[2])
}

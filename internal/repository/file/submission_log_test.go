package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	entry := domain.SubmissionLogEntry{
		Timestamp: time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local),
		Name:      "Jane",
		Email:     "jane@example.com",
		Subject:   "Hi\r\nBcc: x@example.com",
	}
	assert.Equal(t,
		"2025-03-04 05:06:07 - Name: Jane, Email: jane@example.com, Subject: Hi Bcc: x@example.com\n",
		FormatLine(entry))
}

func TestSubmissionLogAppendsAndParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contact_logs.txt")
	log := NewSubmissionLog(path)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, log.Append(context.Background(), domain.SubmissionLogEntry{
				Timestamp: time.Now(),
				Name:      "O&#39;Brien",
				Email:     "ob@example.com",
				Subject:   "Hello",
			}))
		}()
	}
	wg.Wait()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, skipped, err := export.ParseLog(f)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, records, 5)
	assert.Equal(t, "O'Brien", records[0].Name)
}

func TestSubmissionLogUnwritablePath(t *testing.T) {
	log := NewSubmissionLog(filepath.Join(t.TempDir(), "missing", "dir", "log.txt"))
	err := log.Append(context.Background(), domain.SubmissionLogEntry{Timestamp: time.Now()})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "submission log"))
}

// Package export converts the contact submission log into spreadsheets.
package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"regexp"
	"time"
)

// TimeLayout is the timestamp layout of a submission log line
const TimeLayout = "2006-01-02 15:04:05"

var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) - Name: (.*?), Email: (\S*), Subject: (.*)$`)

// Record is one parsed submission log line with entities decoded
type Record struct {
	Timestamp time.Time
	Name      string
	Email     string
	Subject   string
}

// ParseLine decodes a single log line
func ParseLine(line string) (Record, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("unrecognized log line")
	}
	ts, err := time.ParseInLocation(TimeLayout, m[1], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return Record{
		Timestamp: ts,
		Name:      html.UnescapeString(m[2]),
		Email:     html.UnescapeString(m[3]),
		Subject:   html.UnescapeString(m[4]),
	}, nil
}

// ParseLog reads every line of r. Lines that do not parse are skipped
// and their 1-based numbers returned.
func ParseLog(r io.Reader) ([]Record, []int, error) {
	var records []Record
	var skipped []int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			skipped = append(skipped, n)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read submission log: %w", err)
	}
	return records, skipped, nil
}

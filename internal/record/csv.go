package record

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"marker-tracker/internal/marker"
)

// CSVHeader is the first line of every record file.
const CSVHeader = "FRAME, MARK_ID,   Px,   Py,    X,    Y, Z"

// CSVSink writes one line per record: FRAME,MARK_ID,Px,Py,X,Y,Z.
type CSVSink struct {
	f *os.File
	w *bufio.Writer
}

// CreateCSV truncates path and writes the header.
func CreateCSV(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}
	s := &CSVSink{f: f, w: bufio.NewWriter(f)}
	if _, err := s.w.WriteString(CSVHeader + "\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := s.w.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return s, nil
}

// Write appends the batch and flushes it to disk.
func (s *CSVSink) Write(records []marker.Record) error {
	for _, r := range records {
		if _, err := s.w.WriteString(FormatLine(r)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return s.w.Flush()
}

// Close flushes and closes the file.
func (s *CSVSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// FormatLine renders a record as a newline-terminated CSV line.
func FormatLine(r marker.Record) string {
	return fmt.Sprintf("%d,%d,%d,%d,%s,%s,%d\n",
		r.Frame, r.ID, r.Origin.X, r.Origin.Y,
		formatFloat(r.Offset.X), formatFloat(r.Offset.Y), int(r.Offset.Z))
}

// formatFloat prints the shortest round-trip form, keeping a ".0" on
// integral values so the column always reads as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

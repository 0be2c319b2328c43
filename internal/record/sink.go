// Package record persists decoded marker records.
package record

import (
	"errors"

	"marker-tracker/internal/marker"
)

// Sink receives the records of one frame at a time, in frame order.
type Sink interface {
	Write(records []marker.Record) error
	Close() error
}

// MultiSink writes every batch to all of its sinks.
type MultiSink []Sink

// Write stops at the first failing sink.
func (m MultiSink) Write(records []marker.Record) error {
	for _, s := range m {
		if err := s.Write(records); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

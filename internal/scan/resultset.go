package scan

import (
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/wifi"
)

// ResultSet owns the record buffer produced by one scan cycle. The caller
// reads it once for reporting and calls Release exactly once when done;
// the records must not be referenced after release.
type ResultSet struct {
	records  []wifi.AccessPoint
	released bool
}

// NewResultSet wraps a freshly produced record buffer.
func NewResultSet(records []wifi.AccessPoint) *ResultSet {
	return &ResultSet{records: records}
}

// Len reports the number of records in the set, zero once released.
func (s *ResultSet) Len() int {
	return len(s.records)
}

// Records exposes the record buffer in driver order. It returns nil once
// the set has been released.
func (s *ResultSet) Records() []wifi.AccessPoint {
	return s.records
}

// Release returns the buffer. Idempotent; the set holds no records
// afterward, so stale use shows up as an empty set rather than as reads
// of a stale cycle's data.
func (s *ResultSet) Release() {
	if s.released {
		return
	}
	s.records = nil
	s.released = true
}

// Released reports whether Release has been called.
func (s *ResultSet) Released() bool {
	return s.released
}

package stream

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

// CsvStream reads a semicolon-delimited "Date;Value" CSV into a Float
// channel timeline, one row per sample.
type CsvStream struct {
	reader      *csv.Reader
	file        *os.File
	currentDate time.Time
	haveCurrent bool
	value       float64
	nextDate    time.Time
	haveNext    bool
	nextValue   float64
}

// NewCsvStream opens path and primes the current/next cursor pair. An
// empty or single-row file yields a stream that is immediately finished
// (or, for a truly empty file, has no current sample either).
func NewCsvStream(path string) (*CsvStream, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceIO, err)
	}

	r := csv.NewReader(file)
	r.Comma = ';'

	if _, err := r.Read(); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", ErrSourceIO, err)
	}

	s := &CsvStream{reader: r, file: file}

	first, firstDate, firstValue, ok := readCsvRow(r)
	if !ok || !first {
		return s, nil
	}
	s.currentDate, s.value, s.haveCurrent = firstDate, firstValue, true

	second, secondDate, secondValue, ok := readCsvRow(r)
	if ok && second {
		s.nextDate, s.nextValue, s.haveNext = secondDate, secondValue, true
	}

	return s, nil
}

func readCsvRow(r *csv.Reader) (present bool, date time.Time, value float64, ok bool) {
	record, err := r.Read()
	if err == io.EOF {
		return false, time.Time{}, 0, true
	}
	if err != nil {
		return false, time.Time{}, 0, false
	}
	if len(record) < 2 {
		return false, time.Time{}, 0, false
	}

	t, err := time.Parse(dateFormat, record[0])
	if err != nil {
		return false, time.Time{}, 0, false
	}

	v, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return false, time.Time{}, 0, false
	}

	return true, t, v, true
}

func (s *CsvStream) Value() timeline.Value {
	return timeline.Float64(s.value)
}

func (s *CsvStream) Date() (time.Time, bool) {
	return s.currentDate, s.haveCurrent
}

func (s *CsvStream) NextDate() (time.Time, bool) {
	return s.nextDate, s.haveNext
}

func (s *CsvStream) IsFinish() bool {
	return !s.haveNext
}

func (s *CsvStream) step() {
	if !s.haveNext {
		return
	}
	s.currentDate, s.value, s.haveCurrent = s.nextDate, s.nextValue, true

	present, date, value, ok := readCsvRow(s.reader)
	if ok && present {
		s.nextDate, s.nextValue, s.haveNext = date, value, true
	} else {
		s.haveNext = false
	}
}

func (s *CsvStream) isDateInInterval(t time.Time) bool {
	if !s.haveNext {
		return false
	}
	return s.nextDate.After(t)
}

// SetDate advances until NextDate strictly exceeds t. A finished stream
// ignores the call; the loop additionally bails as soon as the stream
// finishes mid-advance, rather than spinning once next becomes absent.
func (s *CsvStream) SetDate(t time.Time) {
	if s.IsFinish() {
		return
	}
	for !s.isDateInInterval(t) && !s.IsFinish() {
		s.step()
	}
}

// Close releases the underlying file handle.
func (s *CsvStream) Close() error {
	return s.file.Close()
}

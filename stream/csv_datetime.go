package stream

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

// CsvDateTimeStream reads a semicolon-delimited, "Date"-only CSV. Its
// value at any point is its own current timestamp, re-encoded through a
// single Datetime channel rather than read from a second column.
type CsvDateTimeStream struct {
	reader      *csv.Reader
	file        *os.File
	currentDate time.Time
	haveCurrent bool
	nextDate    time.Time
	haveNext    bool
}

func NewCsvDateTimeStream(path string) (*CsvDateTimeStream, error) {
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

	s := &CsvDateTimeStream{reader: r, file: file}

	first, firstDate, ok := readCsvDateRow(r)
	if !ok || !first {
		return s, nil
	}
	s.currentDate, s.haveCurrent = firstDate, true

	second, secondDate, ok := readCsvDateRow(r)
	if ok && second {
		s.nextDate, s.haveNext = secondDate, true
	}

	return s, nil
}

func readCsvDateRow(r *csv.Reader) (present bool, date time.Time, ok bool) {
	record, err := r.Read()
	if err == io.EOF {
		return false, time.Time{}, true
	}
	if err != nil {
		return false, time.Time{}, false
	}
	if len(record) < 1 {
		return false, time.Time{}, false
	}

	t, err := time.Parse(dateFormat, record[0])
	if err != nil {
		return false, time.Time{}, false
	}

	return true, t, true
}

func (s *CsvDateTimeStream) Value() timeline.Value {
	return timeline.DatetimeOf(s.currentDate.Format(dateFormat))
}

func (s *CsvDateTimeStream) Date() (time.Time, bool) {
	return s.currentDate, s.haveCurrent
}

func (s *CsvDateTimeStream) NextDate() (time.Time, bool) {
	return s.nextDate, s.haveNext
}

func (s *CsvDateTimeStream) IsFinish() bool {
	return !s.haveNext
}

func (s *CsvDateTimeStream) step() {
	if !s.haveNext {
		return
	}
	s.currentDate, s.haveCurrent = s.nextDate, true

	present, date, ok := readCsvDateRow(s.reader)
	if ok && present {
		s.nextDate, s.haveNext = date, true
	} else {
		s.haveNext = false
	}
}

func (s *CsvDateTimeStream) isDateInInterval(t time.Time) bool {
	if !s.haveNext {
		return false
	}
	return s.nextDate.After(t)
}

func (s *CsvDateTimeStream) SetDate(t time.Time) {
	if s.IsFinish() {
		return
	}
	for !s.isDateInInterval(t) && !s.IsFinish() {
		s.step()
	}
}

func (s *CsvDateTimeStream) Close() error {
	return s.file.Close()
}

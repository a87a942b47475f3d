package stream

import "testing"

// TestCsvDateTimeStreamAdvance is grounded on the Rust
// CsvDateTimeStream unit test (original_source/data_streams), adapted to
// this package's three-row fixture.
func TestCsvDateTimeStreamAdvance(t *testing.T) {
	s, err := NewCsvDateTimeStream("testdata/s4_dates.csv")
	if err != nil {
		t.Fatalf("NewCsvDateTimeStream: %v", err)
	}
	defer s.Close()

	if s.IsFinish() {
		t.Fatal("fresh 3-row stream should not be finished")
	}
	if got := s.Value().Datetime; got != "2024-05-04 23:00:00" {
		t.Errorf("initial Value() = %s, want 2024-05-04 23:00:00", got)
	}

	next, _ := s.NextDate()
	s.SetDate(next)
	if got := s.Value().Datetime; got != "2024-05-05 00:00:00" {
		t.Errorf("Value() after first advance = %s, want 2024-05-05 00:00:00", got)
	}
	if s.IsFinish() {
		t.Fatal("stream should have one more row remaining")
	}

	last, _ := s.NextDate()
	s.SetDate(last)
	if got := s.Value().Datetime; got != "2024-05-05 01:00:00" {
		t.Errorf("Value() after final advance = %s, want 2024-05-05 01:00:00", got)
	}
	if !s.IsFinish() {
		t.Error("stream should be finished after its last row")
	}
}

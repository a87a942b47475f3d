package stream

import "testing"

func TestCsvStreamBasicAdvance(t *testing.T) {
	s, err := NewCsvStream("testdata/s4_a.csv")
	if err != nil {
		t.Fatalf("NewCsvStream: %v", err)
	}
	defer s.Close()

	if s.IsFinish() {
		t.Fatal("fresh stream with 3 rows should not be finished")
	}

	v := s.Value()
	if v.Kind.String() != "Float" || v.Float != 1.0 {
		t.Errorf("initial Value() = %+v, want Float(1.0)", v)
	}

	next, ok := s.NextDate()
	if !ok {
		t.Fatal("expected a next date")
	}
	if got := next.Format(dateFormat); got != "2024-01-01 00:30:00" {
		t.Errorf("NextDate() = %s, want 2024-01-01 00:30:00", got)
	}

	s.SetDate(next)
	if s.Value().Float != 2.0 {
		t.Errorf("after SetDate to first next, Value() = %v, want 2.0", s.Value().Float)
	}

	if s.IsFinish() {
		t.Fatal("stream should have one more row remaining")
	}

	last, ok := s.NextDate()
	if !ok {
		t.Fatal("expected a final next date")
	}
	s.SetDate(last)
	if !s.IsFinish() {
		t.Error("stream should be finished after consuming its last row")
	}

	// A finished stream ignores further SetDate calls.
	before := s.Value()
	s.SetDate(last)
	if s.Value() != before {
		t.Error("SetDate on a finished stream must be a no-op")
	}
}

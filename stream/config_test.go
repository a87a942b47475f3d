package stream

import "testing"

func TestBuildMergedFromConfig(t *testing.T) {
	merged, err := BuildMerged([]Config{
		{Type: "Csv", Path: "testdata/s4_a.csv"},
		{Type: "CsvDateTime", Path: "testdata/s4_dates.csv"},
	})
	if err != nil {
		t.Fatalf("BuildMerged: %v", err)
	}
	if merged.IsFinish() {
		t.Fatal("freshly built merged stream should not be finished")
	}
}

func TestBuildUnknownType(t *testing.T) {
	_, err := Build(Config{Type: "Wat", Path: "testdata/s4_a.csv"})
	if err == nil {
		t.Fatal("expected error for unknown stream type")
	}
}

package config

import (
	"os"
	"testing"
)

func TestLoadParsesAllTopLevelSections(t *testing.T) {
	f, err := Load("testdata/sample.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if f.LayerParams.FieldWidth != 4 || f.LayerParams.LayerHeight != 2 {
		t.Errorf("LayerParams = %+v, want field_width=4 layer_height=2", f.LayerParams)
	}
	if f.SynapseParams.Alpha != 1.0 || f.SynapseParams.RefractInterval != 3 {
		t.Errorf("SynapseParams = %+v, want alpha=1.0 refract_interval=3", f.SynapseParams)
	}
	if len(f.TrainingStreams) != 2 {
		t.Fatalf("len(TrainingStreams) = %d, want 2", len(f.TrainingStreams))
	}
	if f.TrainingStreams[0].Type != "Csv" || f.TrainingStreams[1].Type != "CsvDateTime" {
		t.Errorf("TrainingStreams types = %q, %q", f.TrainingStreams[0].Type, f.TrainingStreams[1].Type)
	}
	if len(f.Timelines) != 2 {
		t.Fatalf("len(Timelines) = %d, want 2", len(f.Timelines))
	}
	if f.Timelines[0].Type != "Float" || f.Timelines[0].Max != 100.0 {
		t.Errorf("Timelines[0] = %+v, want Float max=100.0", f.Timelines[0])
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("testdata/does_not_exist.toml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestRequireEnvReturnsErrMissingEnvWhenUnset(t *testing.T) {
	os.Unsetenv("RIPPLENET_TEST_VAR")
	_, err := RequireEnv("RIPPLENET_TEST_VAR")
	if err == nil {
		t.Fatal("expected ErrMissingEnv")
	}
	var missing *ErrMissingEnv
	if !asErrMissingEnv(err, &missing) {
		t.Fatalf("error = %v, want *ErrMissingEnv", err)
	}
	if missing.Name != "RIPPLENET_TEST_VAR" {
		t.Errorf("ErrMissingEnv.Name = %q, want RIPPLENET_TEST_VAR", missing.Name)
	}
}

func TestRequireEnvReturnsValueWhenSet(t *testing.T) {
	os.Setenv("RIPPLENET_TEST_VAR", "hello")
	defer os.Unsetenv("RIPPLENET_TEST_VAR")

	v, err := RequireEnv("RIPPLENET_TEST_VAR")
	if err != nil {
		t.Fatalf("RequireEnv: %v", err)
	}
	if v != "hello" {
		t.Errorf("v = %q, want hello", v)
	}
}

func TestEnvOrFallsBackWhenUnset(t *testing.T) {
	os.Unsetenv("RIPPLENET_TEST_VAR")
	if v := EnvOr("RIPPLENET_TEST_VAR", "fallback"); v != "fallback" {
		t.Errorf("v = %q, want fallback", v)
	}
}

func TestEnvPortOrParsesOrFallsBack(t *testing.T) {
	os.Setenv("RIPPLENET_TEST_PORT", "9090")
	defer os.Unsetenv("RIPPLENET_TEST_PORT")
	if got := EnvPortOr("RIPPLENET_TEST_PORT", 8000); got != 9090 {
		t.Errorf("got %d, want 9090", got)
	}

	os.Unsetenv("RIPPLENET_TEST_PORT")
	if got := EnvPortOr("RIPPLENET_TEST_PORT", 8000); got != 8000 {
		t.Errorf("got %d, want fallback 8000", got)
	}
}

func asErrMissingEnv(err error, target **ErrMissingEnv) bool {
	e, ok := err.(*ErrMissingEnv)
	if !ok {
		return false
	}
	*target = e
	return true
}

// Package timeline implements the value<->bits codecs of the data plane:
// per-channel quantization (float, integer, enum, datetime) and the
// complex timeline that concatenates them into one field-sized bit vector.
package timeline

import (
	"encoding/json"
	"fmt"
)

// Kind tags which variant a Value currently holds.
type Kind int

const (
	KindFloat Kind = iota
	KindInteger
	KindEnum
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "Float"
	case KindInteger:
		return "Integer"
	case KindEnum:
		return "Enum"
	case KindDatetime:
		return "Datetime"
	default:
		return "Unknown"
	}
}

// Value is the tagged union carried by both the training streams (C4) and
// the complex timeline (C3): exactly one of Float/Integer/Enum/Datetime is
// meaningful, selected by Kind. It is the wire representation for
// /push_data and /predict JSON bodies.
type Value struct {
	Kind     Kind
	Float    float64
	Integer  int
	Enum     string
	Datetime string
}

// Float64 builds a Float-kind value.
func Float64(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// Int builds an Integer-kind value.
func Int(v int) Value { return Value{Kind: KindInteger, Integer: v} }

// EnumOf builds an Enum-kind value.
func EnumOf(v string) Value { return Value{Kind: KindEnum, Enum: v} }

// DatetimeOf builds a Datetime-kind value whose string is already
// formatted per the owning channel's layout.
func DatetimeOf(v string) Value { return Value{Kind: KindDatetime, Datetime: v} }

// wireValue is the JSON tagged-union shape exchanged over HTTP:
// {"type":"Float","value":39.0}, {"type":"Enum","value":"three"}, etc.
type wireValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON emits the externally-tagged wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	var raw []byte
	var err error

	switch v.Kind {
	case KindFloat:
		raw, err = json.Marshal(v.Float)
	case KindInteger:
		raw, err = json.Marshal(v.Integer)
	case KindEnum:
		raw, err = json.Marshal(v.Enum)
	case KindDatetime:
		raw, err = json.Marshal(v.Datetime)
	default:
		return nil, fmt.Errorf("timeline: value has unknown kind %d", v.Kind)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(wireValue{Type: v.Kind.String(), Value: raw})
}

// UnmarshalJSON restores a Value from its wire form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Type {
	case "Float":
		var f float64
		if err := json.Unmarshal(w.Value, &f); err != nil {
			return err
		}
		*v = Float64(f)
	case "Integer":
		var n int
		if err := json.Unmarshal(w.Value, &n); err != nil {
			return err
		}
		*v = Int(n)
	case "Enum":
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return err
		}
		*v = EnumOf(s)
	case "Datetime":
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return err
		}
		*v = DatetimeOf(s)
	default:
		return fmt.Errorf("timeline: unknown value type %q", w.Type)
	}
	return nil
}

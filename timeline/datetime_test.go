package timeline

import "testing"

func TestDatetimeChannelRoundTrip(t *testing.T) {
	ch := NewDatetimeChannel("")

	bits := ch.GetBits(DatetimeOf("2023-06-15 14:32:00"))
	v := ch.Reverse(bits)

	// Minutes quantize to the enclosing quarter hour (32 -> 30).
	if v.Datetime != "2023-06-15 14:30:00" {
		t.Errorf("round trip = %q, want 2023-06-15 14:30:00", v.Datetime)
	}
}

func TestDatetimeChannelUnparseableEncodesZero(t *testing.T) {
	ch := NewDatetimeChannel("")
	bits := ch.GetBits(DatetimeOf("not a date"))
	if !bitsEqual(bits, allZeros(datetimeCapacity)) {
		t.Errorf("GetBits(garbage) = %v, want 24 zero bits", bits)
	}
}

func TestDatetimeChannelInvalidBitsReverseToEmpty(t *testing.T) {
	ch := NewDatetimeChannel("")
	v := ch.Reverse(allZeros(datetimeCapacity))
	if v.Datetime != "" {
		t.Errorf("Reverse(zero bits) = %q, want empty string (month/day = 0 is invalid)", v.Datetime)
	}
}

func TestDatetimeChannelShortBitsReverseToEmpty(t *testing.T) {
	ch := NewDatetimeChannel("")
	v := ch.Reverse([]bool{true, true, true})
	if v.Datetime != "" {
		t.Errorf("Reverse(short bits) = %q, want empty string", v.Datetime)
	}
}

func TestDatetimeChannelCustomFormat(t *testing.T) {
	ch := NewDatetimeChannel("%Y/%m/%d %H:%M")
	bits := ch.GetBits(DatetimeOf("2023/06/15 14:32"))
	v := ch.Reverse(bits)
	if v.Datetime != "2023/06/15 14:30" {
		t.Errorf("round trip with custom format = %q, want 2023/06/15 14:30", v.Datetime)
	}
}

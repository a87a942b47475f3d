package timeline

import (
	"time"

	"github.com/SynapticNetworks/ripplenet/bitcodec"
)

const (
	datetimeCapacity    = 24
	defaultDatetimeFmt  = "%Y-%m-%d %H:%M:%S"
	datetimeYearMax     = 2155
	datetimeMonthMax    = 12
	datetimeDayMax      = 31
	datetimeHourMax     = 24
	datetimeQuarterMax  = 3
	datetimeYearOffset  = 1900
	datetimeQuarterStep = 15
)

// DatetimeChannel packs a parsed timestamp into a fixed 24-bit layout:
// (year-1900:8, month:4, day:5, hour:5, quarter-hour:2). A format string
// controls parsing/formatting; the default matches "%Y-%m-%d %H:%M:%S".
type DatetimeChannel struct {
	Format string
	layout string
}

// NewDatetimeChannel builds a channel using format (empty selects the
// default "%Y-%m-%d %H:%M:%S").
func NewDatetimeChannel(format string) *DatetimeChannel {
	if format == "" {
		format = defaultDatetimeFmt
	}
	return &DatetimeChannel{Format: format, layout: goLayout(format)}
}

func (c *DatetimeChannel) Capacity() int { return datetimeCapacity }

// GetBits parses v.Datetime with the channel's format; an unparseable
// value encodes as 24 zero bits rather than failing.
func (c *DatetimeChannel) GetBits(v Value) []bool {
	if v.Kind != KindDatetime {
		panic(ErrCodecMismatch)
	}

	t, err := time.Parse(c.layout, v.Datetime)
	if err != nil {
		return allZeros(datetimeCapacity)
	}

	bits := make([]bool, 0, datetimeCapacity)
	bits = append(bits, bitcodec.NumberToBits(t.Year()-datetimeYearOffset, 8, datetimeYearMax-datetimeYearOffset)...)
	bits = append(bits, bitcodec.NumberToBits(int(t.Month()), 4, datetimeMonthMax)...)
	bits = append(bits, bitcodec.NumberToBits(t.Day(), 5, datetimeDayMax)...)
	bits = append(bits, bitcodec.NumberToBits(t.Hour(), 5, datetimeHourMax)...)
	bits = append(bits, bitcodec.NumberToBits(t.Minute()/datetimeQuarterStep, 2, datetimeQuarterMax)...)
	return bits
}

// Reverse unpacks the 24-bit layout back into a formatted string; a
// combination that does not form a valid calendar date/time reverses to
// the empty string.
func (c *DatetimeChannel) Reverse(bits []bool) Value {
	if len(bits) < datetimeCapacity {
		return DatetimeOf("")
	}

	year := bitcodec.BitsToNumber(bits[0:8]) + datetimeYearOffset
	month := min(bitcodec.BitsToNumber(bits[8:12]), datetimeMonthMax)
	day := min(bitcodec.BitsToNumber(bits[12:17]), datetimeDayMax)
	hour := min(bitcodec.BitsToNumber(bits[17:22]), 23)
	minute := min(bitcodec.BitsToNumber(bits[22:24])*datetimeQuarterStep, 59)

	if month == 0 || day == 0 {
		return DatetimeOf("")
	}

	loc := time.UTC
	candidate := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	// time.Date normalizes overflowing components (e.g. day 31 in a
	// 30-day month rolls into the next month); treat that as invalid
	// rather than silently returning a shifted date.
	if candidate.Year() != year || int(candidate.Month()) != month || candidate.Day() != day {
		return DatetimeOf("")
	}

	return DatetimeOf(candidate.Format(c.layout))
}

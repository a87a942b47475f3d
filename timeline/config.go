package timeline

import "fmt"

// Config is the TOML shape of one `[[timelines]]` table entry (see §6 of
// the external interface: `type="Float"|"Integer"|"Enum"|"Datetime"`).
// Only the fields relevant to Type are populated; the rest are ignored.
type Config struct {
	Type     string   `toml:"type"`
	Min      float64  `toml:"min"`
	Max      float64  `toml:"max"`
	Capacity int      `toml:"capacity"`
	Options  []string `toml:"options"`
	Format   string   `toml:"format"`
}

// BuildChannel turns a Config into the concrete Channel it describes.
// Float and Integer channels are always linear here; a nonlinear Remap is
// a programmatic-only construction, not something the TOML config can
// express.
func BuildChannel(cfg Config) (Channel, error) {
	switch cfg.Type {
	case "Float":
		return NewFloatChannel(cfg.Min, cfg.Max, cfg.Capacity), nil
	case "Integer":
		return NewIntegerChannel(int(cfg.Min), int(cfg.Max), cfg.Capacity), nil
	case "Enum":
		return NewEnumChannel(cfg.Options, cfg.Capacity), nil
	case "Datetime":
		return NewDatetimeChannel(cfg.Format), nil
	default:
		return nil, fmt.Errorf("timeline: unknown channel type %q", cfg.Type)
	}
}

// BuildComplexTimeline builds every configured channel, in order, and
// assembles them into a ComplexTimeline.
func BuildComplexTimeline(cfgs []Config) (*ComplexTimeline, error) {
	channels := make([]Channel, 0, len(cfgs))
	for _, cfg := range cfgs {
		ch, err := BuildChannel(cfg)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return NewComplexTimeline(channels...), nil
}

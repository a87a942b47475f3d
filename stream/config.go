package stream

import "fmt"

// Config is the TOML shape of one `[[training_streams]]` table entry
// (§6: `{type="Csv", path=…}` or `{type="CsvDateTime", path=…}`).
type Config struct {
	Type string `toml:"type"`
	Path string `toml:"path"`
}

// Build opens the source described by cfg.
func Build(cfg Config) (Stream, error) {
	switch cfg.Type {
	case "Csv":
		return NewCsvStream(cfg.Path)
	case "CsvDateTime":
		return NewCsvDateTimeStream(cfg.Path)
	default:
		return nil, fmt.Errorf("stream: unknown training stream type %q", cfg.Type)
	}
}

// BuildMerged opens every configured source and merges them in order.
func BuildMerged(cfgs []Config) (*MergedStream, error) {
	streams := make([]Stream, 0, len(cfgs))
	for _, cfg := range cfgs {
		s, err := Build(cfg)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}
	return NewMergedStream(streams...), nil
}

package timeline

import "strings"

// goLayout translates the small subset of strftime directives used by
// this system's CSV/date configuration (%Y %m %d %H %M %S) into a Go
// reference-time layout string. Unsupported directives pass through
// unchanged, which is sufficient for every format this system accepts.
func goLayout(strftime string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%M", "04",
		"%S", "05",
	)
	return replacer.Replace(strftime)
}

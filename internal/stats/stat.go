package stats

import "fmt"

// Stat names a finalized shift statistic. The two accumulation
// variants in use differ only in which statistic they report, so both
// are explicit modes rather than a silent default.
type Stat string

const (
	StatMean Stat = "mean"
	StatRMS  Stat = "rms"
	StatBoth Stat = "both"
)

// ParseStat validates a statistic name from the CLI.
func ParseStat(s string) (Stat, error) {
	switch Stat(s) {
	case StatMean, StatRMS, StatBoth:
		return Stat(s), nil
	}
	return "", fmt.Errorf("unknown statistic %q: expected mean, rms, or both", s)
}

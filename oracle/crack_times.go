package oracle

import (
	"fmt"
	"math"
)

var attackRates = []struct {
	name          string
	guessesPerSec float64
}{
	{OnlineThrottling, 100.0 / 3600.0},
	{OnlineNoThrottling, 10},
	{OfflineSlowHashing, 1e4},
	{OfflineFastHashing, 1e10},
}

// CrackTimesDisplay renders how long each attack model takes to exhaust the
// given number of guesses.
func CrackTimesDisplay(guesses float64) map[string]string {
	display := make(map[string]string, len(attackRates))
	for _, rate := range attackRates {
		display[rate.name] = DisplayTime(guesses / rate.guessesPerSec)
	}
	return display
}

const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

func DisplayTime(seconds float64) string {
	var (
		base int64
		unit string
	)

	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		base, unit = round(seconds), "second"
	case seconds < hour:
		base, unit = round(seconds/minute), "minute"
	case seconds < day:
		base, unit = round(seconds/hour), "hour"
	case seconds < month:
		base, unit = round(seconds/day), "day"
	case seconds < year:
		base, unit = round(seconds/month), "month"
	case seconds < century:
		base, unit = round(seconds/year), "year"
	default:
		return "centuries"
	}

	if base != 1 {
		unit += "s"
	}

	return fmt.Sprintf("%d %s", base, unit)
}

func round(f float64) int64 {
	return int64(math.Round(f))
}

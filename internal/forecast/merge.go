package forecast

import (
	"strconv"
	"strings"
)

// ideographicSpace shows up inside JMA weather texts as a word separator.
const ideographicSpace = "　"

// mergeSection folds one time-series section into the per-day accumulator.
// Precedence rules:
//   - weather, min and max are first-writer-wins: the first section to
//     supply a value for a day keeps it, later sections never overwrite.
//   - pop keeps the maximum of every integer value presented for a day.
//
// Which fields a section contributes is decided once per section by field
// presence, not per index, so an empty string inside a present list still
// counts as that section's answer for weather resolution purposes.
//
// The only error is an unparseable forecast timestamp; the caller treats it
// as fatal for the rest of the report it came from.
func mergeSection(acc map[string]*dayRecord, sec section) error {
	if sec.TimeDefines == nil || sec.Areas == nil || len(sec.Areas) <= primaryAreaIndex {
		return nil
	}
	area := sec.Areas[primaryAreaIndex]

	hasWeathers := area.Weathers != nil
	hasCodes := area.WeatherCodes != nil
	hasPops := area.Pops != nil
	hasMin := area.TempsMin != nil
	hasMax := area.TempsMax != nil

	for i, ts := range sec.TimeDefines {
		date, err := DateKey(ts)
		if err != nil {
			return err
		}

		key := date.Format(dayKeyLayout)
		rec, ok := acc[key]
		if !ok {
			rec = &dayRecord{date: date}
			acc[key] = rec
		}

		if rec.weather == "" {
			if hasWeathers && i < len(area.Weathers) {
				if w := strings.ReplaceAll(area.Weathers[i], ideographicSpace, " "); w != "" {
					rec.weather = w
				}
			} else if hasCodes && i < len(area.WeatherCodes) {
				rec.weather = CodeDescription(area.WeatherCodes[i])
			}
		}

		if hasPops && i < len(area.Pops) {
			if pop, err := strconv.Atoi(area.Pops[i]); err == nil {
				if pop > rec.pop {
					rec.pop = pop
				}
				rec.popSet = true
			}
		}

		if hasMin && i < len(area.TempsMin) && rec.min == "" {
			rec.min = area.TempsMin[i]
		}
		if hasMax && i < len(area.TempsMax) && rec.max == "" {
			rec.max = area.TempsMax[i]
		}
	}

	return nil
}

package forecast

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Aggregate merges every time-series section of every report, in report
// order then section order, into one Event per forecast day, sorted by date
// ascending. Sections that do not decode into the expected shape are
// skipped; a report whose timestamps cannot be parsed stops contributing at
// that point. The result is empty only when nothing merged at all.
func Aggregate(city string, reports []Report) []Event {
	acc := make(map[string]*dayRecord)

	for _, report := range reports {
		for _, raw := range report.TimeSeries {
			var sec section
			if err := json.Unmarshal(raw, &sec); err != nil {
				continue
			}
			if err := mergeSection(acc, sec); err != nil {
				// A broken timestamp invalidates the rest of this
				// report; days merged so far are kept.
				break
			}
		}
	}

	keys := make([]string, 0, len(acc))
	for k := range acc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	events := make([]Event, 0, len(keys))
	for _, k := range keys {
		events = append(events, acc[k].toEvent(city))
	}
	return events
}

func (r *dayRecord) toEvent(city string) Event {
	weather := r.weather
	if weather == "" {
		weather = "no data"
	}

	pop := "---"
	if r.popSet {
		pop = strconv.Itoa(r.pop) + "%"
	}

	min := r.min
	if min == "" {
		min = "-"
	}
	max := r.max
	if max == "" {
		max = "-"
	}

	return Event{
		Date:    r.date,
		Summary: fmt.Sprintf("%s %s°C/%s°C", weather, max, min),
		Description: fmt.Sprintf(
			"%s forecast for %s\nWeather: %s\nPrecipitation: %s\nHigh: %s°C / Low: %s°C\nSource: Japan Meteorological Agency",
			city, r.date.Format(dayKeyLayout), weather, pop, max, min,
		),
	}
}

package forecast

import (
	"encoding/json"
	"time"
)

// primaryAreaIndex marks the convention that the first entry of a section's
// areas list is the authoritative one for the requested area code. The JMA
// feed is fetched per area code, so only one area is expected anyway.
const primaryAreaIndex = 0

// Report is one forecast bulletin from the JMA feed. The endpoint returns an
// array of these (typically a short-range and a long-range report). Sections
// are kept raw so that one malformed section never poisons its siblings.
type Report struct {
	PublishingOffice string            `json:"publishingOffice"`
	ReportDatetime   string            `json:"reportDatetime"`
	TimeSeries       []json.RawMessage `json:"timeSeries"`
}

// section is one time-series block of a report. timeDefines is index-aligned
// with every per-area value list.
type section struct {
	TimeDefines []string       `json:"timeDefines"`
	Areas       []AreaForecast `json:"areas"`
}

// AreaForecast carries the per-area value lists of a section. Every list is
// optional; a nil slice means the field was absent from the section, which is
// distinct from a list that is present but holds empty strings.
type AreaForecast struct {
	Area         AreaRef  `json:"area"`
	Weathers     []string `json:"weathers"`
	WeatherCodes []string `json:"weatherCodes"`
	Pops         []string `json:"pops"`
	TempsMin     []string `json:"tempsMin"`
	TempsMax     []string `json:"tempsMax"`
}

// AreaRef identifies the geographic area a value list belongs to.
type AreaRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Event is one all-day calendar entry for one forecast day of one city.
type Event struct {
	Date        time.Time
	Summary     string
	Description string
}

// dayRecord accumulates everything known about a single forecast day while
// sections are merged. weather, min and max keep the first value written;
// pop keeps the maximum seen.
type dayRecord struct {
	date    time.Time
	weather string
	pop     int
	popSet  bool
	min     string
	max     string
}

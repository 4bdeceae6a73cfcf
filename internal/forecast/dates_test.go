package forecast

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    string
		wantErr bool
	}{
		{"full timestamp with offset", "2023-10-27T17:00:00+09:00", "2023-10-27", false},
		{"utc timestamp", "2023-10-27T15:00:00Z", "2023-10-27", false},
		{"date-only fallback", "2023-10-27 17:00", "2023-10-27", false},
		{"bare date", "2023-10-27", "2023-10-27", false},
		{"garbage", "not-a-date", "", true},
		{"too short", "2023-10", "", true},
		{"invalid calendar date", "2023-13-45T00:00:00+09:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateKey(tt.ts)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DateKey(%q) expected error, got %v", tt.ts, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateKey(%q) unexpected error: %v", tt.ts, err)
			}
			if got.Format("2006-01-02") != tt.want {
				t.Errorf("DateKey(%q) = %s, want %s", tt.ts, got.Format("2006-01-02"), tt.want)
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("DateKey(%q) kept a time-of-day component: %v", tt.ts, got)
			}
		})
	}
}

func TestDateKeyKeepsEncodedOffset(t *testing.T) {
	// 01:00+09:00 is 16:00 UTC the previous day; the day must come from
	// the encoded offset, not from a normalized zone.
	got, err := DateKey("2023-10-27T01:00:00+09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 27 {
		t.Errorf("day = %d, want 27", got.Day())
	}
	if _, offset := got.Zone(); offset != 9*60*60 {
		t.Errorf("offset = %d, want +09:00", offset)
	}
}

func TestDateKeyFallbackProducesMidnight(t *testing.T) {
	got, err := DateKey("2023-10-27Tgarbage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

package forecast

import "testing"

func TestCodeDescription(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"100", "晴れ"},
		{"200", "曇り"},
		{"300", "雨"},
		{"400", "雪"},
		{"999", "unknown(999)"},
		{"", "unknown()"},
	}

	for _, tt := range tests {
		if got := CodeDescription(tt.code); got != tt.want {
			t.Errorf("CodeDescription(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

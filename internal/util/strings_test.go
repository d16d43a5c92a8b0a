package util

import "testing"

func TestStripHash(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "with hash", hex: "#ff0080", want: "ff0080"},
		{name: "without hash", hex: "ff0080", want: "ff0080"},
		{name: "empty", hex: "", want: ""},
		{name: "only strips leading hash", hex: "#ff#00", want: "ff#00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHash(tt.hex); got != tt.want {
				t.Errorf("StripHash(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

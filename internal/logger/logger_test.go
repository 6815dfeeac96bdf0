package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		format string
	}{
		{"debug", "json"},
		{"info", "console"},
		{"warn", "json"},
		{"error", "console"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			l := New(tt.level, tt.format)
			if l == nil {
				t.Fatal("New() returned nil logger")
			}
		})
	}
}

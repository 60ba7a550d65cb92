package formatting_test

import (
	"testing"

	"quill/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare number", "1024", 1024, false},
		{"megabytes", "1MB", 1024 * 1024, false},
		{"with space", "1 MB", 1024 * 1024, false},
		{"lowercase", "2kb", 2048, false},
		{"fractional", "1.5KB", 1536, false},
		{"empty", "", 0, true},
		{"unknown unit", "5XB", 0, true},
		{"garbage", "lots of bytes", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBytes(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

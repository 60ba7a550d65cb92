package auth_test

import (
	"io"
	"log/slog"
	"testing"

	"quill/internal/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		submitted string
		want      auth.Outcome
	}{
		{
			name:      "matching password",
			secret:    "secret123",
			submitted: "secret123",
			want:      auth.OutcomeMatch,
		},
		{
			name:      "wrong password",
			secret:    "secret123",
			submitted: "secret124",
			want:      auth.OutcomeMismatch,
		},
		{
			name:      "empty submission",
			secret:    "secret123",
			submitted: "",
			want:      auth.OutcomeMismatch,
		},
		{
			name:      "prefix is not a match",
			secret:    "secret123",
			submitted: "secret",
			want:      auth.OutcomeMismatch,
		},
		{
			name:      "no secret configured",
			secret:    "",
			submitted: "anything",
			want:      auth.OutcomeConfigError,
		},
		{
			name:      "no secret and empty submission",
			secret:    "",
			submitted: "",
			want:      auth.OutcomeConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := auth.New(tt.secret, discardLogger())
			if got := sys.Verify(tt.submitted); got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

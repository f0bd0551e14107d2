package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetup_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		Setup(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Errorf("verbosity %d sets level %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

package ports

import (
	"testing"
)

func TestLogLevelRoundTrip(t *testing.T) {
	levels := []LogLevel{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelQuiet}
	for _, level := range levels {
		if got := ParseLogLevel(level.String()); got != level {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
}

func TestParseLogLevel_Unknown(t *testing.T) {
	if got := ParseLogLevel("verbose"); got != LevelInfo {
		t.Errorf("ParseLogLevel(verbose) = %v, want the info default", got)
	}
}
